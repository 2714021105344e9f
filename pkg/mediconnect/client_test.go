package mediconnect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"message": "ok",
		"data":    data,
	})
}

func TestAvailableSlotsRequest(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, []TimeSlot{
			{ID: "s1", DoctorID: "7", SlotDate: "2025-06-12", StartTime: "09:00", EndTime: "09:30"},
		})
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save("token-123", "patient"))
	client := NewClient(server.URL, store)

	slots, err := client.AvailableSlots(context.Background(), "7", time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "/api/appointments/available-slots/7", gotPath, "path should embed the doctor id")
	assert.Equal(t, "date=2025-06-12", gotQuery, "date query should be zero-padded YYYY-MM-DD")
	assert.Equal(t, "Bearer token-123", gotAuth, "bearer token from the store should be attached")
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime)
}

func TestUnauthorizedClearsStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil)
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save("expired-token", "patient"))
	client := NewClient(server.URL, store)

	_, err := client.BookAppointment(context.Background(), &BookAppointmentRequest{
		DoctorID:        "7",
		AppointmentDate: "2025-06-12",
		AppointmentTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrUnauthorized, "401 should surface as ErrUnauthorized")
	assert.Empty(t, store.Token(), "token should be cleared on 401")
	assert.Empty(t, store.Role(), "role should be cleared on 401")
}

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "amira", body["username"])
		writeEnvelope(w, http.StatusOK, LoginResult{Token: "fresh-token", Role: "patient"})
	}))
	defer server.Close()

	store := NewMemoryStore()
	client := NewClient(server.URL, store)

	result, err := client.Login(context.Background(), "amira", "s3cretpass")

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	assert.Equal(t, "fresh-token", store.Token(), "token should be persisted")
	assert.Equal(t, "patient", store.Role(), "role should be persisted")
}

func TestAPIErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "time slot is already booked",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, NewMemoryStore())

	_, err := client.BookAppointment(context.Background(), &BookAppointmentRequest{
		DoctorID:        "7",
		AppointmentDate: "2025-06-12",
		AppointmentTime: "09:00",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "time slot is already booked", apiErr.Message)
}

func TestInitialData(t *testing.T) {
	t.Run("All Three Requests Join", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			switch r.URL.Path {
			case "/api/doctors":
				writeEnvelope(w, http.StatusOK, []Doctor{{ID: "1", Name: "Dr. Amira Hassan"}})
			case "/api/appointments/upcoming":
				writeEnvelope(w, http.StatusOK, []Appointment{{ID: "a1", Status: "scheduled"}})
			case "/api/appointments/history":
				writeEnvelope(w, http.StatusOK, []Appointment{{ID: "a0", Status: "completed"}, {ID: "a2", Status: "cancelled"}})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := NewClient(server.URL, NewMemoryStore())
		data, err := client.InitialData(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "doctors, upcoming, and history should each be fetched once")
		assert.Len(t, data.Doctors, 1)
		assert.Len(t, data.Upcoming, 1)
		assert.Len(t, data.History, 2)
	})

	t.Run("Any Failure Fails The Join", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/appointments/history" {
				writeEnvelope(w, http.StatusInternalServerError, nil)
				return
			}
			writeEnvelope(w, http.StatusOK, []Doctor{})
		}))
		defer server.Close()

		client := NewClient(server.URL, NewMemoryStore())
		_, err := client.InitialData(context.Background())

		assert.Error(t, err, "one failing request should fail the whole join")
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	t.Run("Round Trip", func(t *testing.T) {
		store := NewFileStore(path)
		require.NoError(t, store.Save("persisted-token", "doctor"))

		reopened := NewFileStore(path)
		assert.Equal(t, "persisted-token", reopened.Token(), "token should survive a restart")
		assert.Equal(t, "doctor", reopened.Role(), "role should survive a restart")
	})

	t.Run("Clear Removes The Session", func(t *testing.T) {
		store := NewFileStore(path)
		require.NoError(t, store.Save("t", "patient"))
		require.NoError(t, store.Clear())

		assert.Empty(t, store.Token(), "token should be gone after clear")
		require.NoError(t, store.Clear(), "clearing an already-empty store is fine")
	})

	t.Run("Missing File Reads As Empty", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "nope", "session.json"))
		assert.Empty(t, store.Token())
		assert.Empty(t, store.Role())
	})
}
