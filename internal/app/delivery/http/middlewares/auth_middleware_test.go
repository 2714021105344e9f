package middlewares

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) CreateSession(_ context.Context, _ *models.Session, _ time.Duration) (string, error) {
	return "", nil
}

func (f *fakeSessionService) ParseSessionData(_ context.Context, token string) (*models.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func (f *fakeSessionService) DestroySession(_ context.Context, _ string) error {
	return nil
}

func testMiddlewares(sessions map[string]*models.Session) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionService: &fakeSessionService{sessions: sessions},
	}
}

func TestAuthenticate(t *testing.T) {
	patientSession := &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Email:     "amira@example.com",
		Role:      constvars.MediConnectRolePatient,
	}
	mw := testMiddlewares(map[string]*models.Session{"valid-token": patientSession})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromContext(r.Context())
		assert.NoError(t, err, "session should be in the request context")
		assert.Equal(t, "user-1", session.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/upcoming", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"valid-token")

		rr := httptest.NewRecorder()
		mw.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "valid token should reach the handler")
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/upcoming", nil)

		rr := httptest.NewRecorder()
		mw.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "missing Authorization header should return 401")
	})

	t.Run("Header Without Bearer Prefix", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/upcoming", nil)
		req.Header.Set(constvars.HeaderAuthorization, "valid-token")

		rr := httptest.NewRecorder()
		mw.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "non-bearer header should return 401")
	})

	t.Run("Unknown Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/upcoming", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"expired-token")

		rr := httptest.NewRecorder()
		mw.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "a token without a redis session should return 401")
	})
}

func TestRequireRole(t *testing.T) {
	doctorSession := &models.Session{
		SessionID: "sess-2",
		UserID:    "doc-1",
		Role:      constvars.MediConnectRoleDoctor,
		DoctorID:  "doctor-1",
	}
	mw := testMiddlewares(map[string]*models.Session{"doctor-token": doctorSession})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Allowed Role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/prescriptions", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"doctor-token")

		rr := httptest.NewRecorder()
		mw.Authenticate(mw.RequireRole(constvars.MediConnectRoleDoctor)(okHandler)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "doctor should reach a doctor-only route")
	})

	t.Run("Disallowed Role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/appointments/book", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"doctor-token")

		rr := httptest.NewRecorder()
		mw.Authenticate(mw.RequireRole(constvars.MediConnectRolePatient)(okHandler)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "doctor should not reach a patient-only route")
	})

	t.Run("No Session In Context", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/appointments/book", nil)

		rr := httptest.NewRecorder()
		mw.RequireRole(constvars.MediConnectRolePatient)(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "missing session data should return 401")
	})
}
