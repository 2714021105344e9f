// Package mediconnect is the Go client for the MediConnect REST API.
// Every request reads the bearer token from one injected SessionStore,
// and any 401 response clears that store so every caller sees the
// logged-out state at once.
package mediconnect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// ErrUnauthorized is returned for any 401 response. The session store
// has already been cleared by the time the caller sees it.
var ErrUnauthorized = errors.New("mediconnect: unauthorized")

// APIError is a non-401 failure response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediconnect: api error (status %d): %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the MediConnect API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient builds a client for the API at baseURL (scheme and host,
// without the /api prefix). The store is consulted on every request.
func NewClient(baseURL string, store SessionStore, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Login authenticates and persists the returned token and role.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	if err := c.store.Save(result.Token, result.Role); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &result, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, request *RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", request, nil)
}

// Logout invalidates the server session and clears the local store.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if clearErr := c.store.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// Doctors lists available doctors, optionally filtered by specialization.
func (c *Client) Doctors(ctx context.Context, specialization string) ([]Doctor, error) {
	path := "/api/doctors"
	if specialization != "" {
		path += "?specialization=" + specialization
	}
	var doctors []Doctor
	if err := c.do(ctx, http.MethodGet, path, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Doctor fetches a single doctor by id.
func (c *Client) Doctor(ctx context.Context, doctorID string) (*Doctor, error) {
	var doctor Doctor
	if err := c.do(ctx, http.MethodGet, "/api/doctors/"+doctorID, nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// AvailableSlots fetches the free slots for a doctor on one day. The
// date is formatted as zero-padded YYYY-MM-DD.
func (c *Client) AvailableSlots(ctx context.Context, doctorID string, date time.Time) ([]TimeSlot, error) {
	path := fmt.Sprintf("/api/appointments/available-slots/%s?date=%s", doctorID, date.Format("2006-01-02"))
	var slots []TimeSlot
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// BookAppointment books a slot for the logged-in patient.
func (c *Client) BookAppointment(ctx context.Context, request *BookAppointmentRequest) (*Appointment, error) {
	var appointment Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments/book", request, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// CancelAppointment cancels a scheduled appointment owned by the caller.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID string) error {
	return c.do(ctx, http.MethodPut, "/api/appointments/"+appointmentID+"/cancel", nil, nil)
}

// UpcomingAppointments lists the caller's scheduled future appointments.
func (c *Client) UpcomingAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments/upcoming", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// AppointmentHistory lists the caller's past or non-scheduled appointments.
func (c *Client) AppointmentHistory(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments/history", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAllNotificationsRead marks every unread notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/read-all", nil, nil)
}

// HealthTips lists published health tips. No authentication required.
func (c *Client) HealthTips(ctx context.Context, category string) ([]HealthTip, error) {
	path := "/api/health-tips"
	if category != "" {
		path += "?category=" + category
	}
	var tips []HealthTip
	if err := c.do(ctx, http.MethodGet, path, nil, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// InitialData fetches doctors, upcoming appointments, and history
// concurrently. One request failing fails the whole call, but the
// others are left to finish rather than being cancelled mid-flight.
func (c *Client) InitialData(ctx context.Context) (*InitialData, error) {
	var (
		data InitialData
		g    errgroup.Group
	)
	g.Go(func() error {
		doctors, err := c.Doctors(ctx, "")
		if err != nil {
			return err
		}
		data.Doctors = doctors
		return nil
	})
	g.Go(func() error {
		upcoming, err := c.UpcomingAppointments(ctx)
		if err != nil {
			return err
		}
		data.Upcoming = upcoming
		return nil
	})
	g.Go(func() error {
		history, err := c.AppointmentHistory(ctx)
		if err != nil {
			return err
		}
		data.History = history
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		if err := c.store.Clear(); err != nil {
			return fmt.Errorf("clearing session after 401: %w", err)
		}
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response (status %d): %w", response.StatusCode, err)
	}
	if response.StatusCode >= http.StatusBadRequest || !env.Success {
		return &APIError{StatusCode: response.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}
