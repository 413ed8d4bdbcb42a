package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/pipeline"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func customerID(c *domain.Customer) string { return c.ID }

func TestLoginAndLogout(t *testing.T) {
	var logoutAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/login":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["password"] != "geheim123" {
				writeBody(w, http.StatusOK, domain.LoginResponse{Success: false, Error: "E-Mail oder Passwort ist falsch"})
				return
			}
			writeBody(w, http.StatusOK, domain.LoginResponse{
				Success: true,
				Token:   "jwt-token",
				User:    &domain.TeamMember{ID: "m1", Name: "Max"},
			})
		case "/v1/logout":
			logoutAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	store := FileSessionStore{Path: filepath.Join(t.TempDir(), "crm", "session.json")}
	c := New(srv.URL, WithSessionStore(store))

	_, err := c.Login(context.Background(), "max@agentur.de", "falsch")
	var notice *Notice
	require.ErrorAs(t, err, &notice)
	assert.Equal(t, "E-Mail oder Passwort ist falsch", notice.Message)
	assert.Nil(t, c.Session())

	session, err := c.Login(context.Background(), "max@agentur.de", "geheim123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)

	restored, err := New(srv.URL, WithSessionStore(store)).Restore()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Max", restored.User.Name)

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "Bearer jwt-token", logoutAuth)
	assert.Nil(t, c.Session())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.ErrorIs(t, c.Logout(context.Background()), ErrNoSession)
}

func TestCollectionPatchesOnlyAfterConfirmation(t *testing.T) {
	var failWrites atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && failWrites.Load() {
			writeBody(w, http.StatusInternalServerError, apiErrors.APIError{Code: apiErrors.ErrDatabaseOperation, Message: "Erro ao salvar"})
			return
		}

		switch {
		case r.Method == http.MethodGet:
			writeBody(w, http.StatusOK, []*domain.Customer{{ID: "c1", Name: "Alt GmbH"}})
		case r.Method == http.MethodPost:
			writeBody(w, http.StatusCreated, &domain.Customer{ID: "c2", Name: "Neu GmbH"})
		case r.Method == http.MethodPut && r.URL.Path == "/v1/customers/c1":
			writeBody(w, http.StatusOK, &domain.Customer{ID: "c1", Name: "Alt GmbH & Co"})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	customers := NewCollection(New(srv.URL), "/v1/customers", customerID)
	ctx := context.Background()

	_, err := customers.Fetch(ctx, nil)
	require.NoError(t, err)

	_, err = customers.Add(ctx, domain.CreateCustomerRequest{Name: "Neu GmbH"})
	require.NoError(t, err)
	items := customers.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c2", items[0].ID)

	_, err = customers.Update(ctx, "c1", map[string]string{"name": "Alt GmbH & Co"})
	require.NoError(t, err)
	assert.Equal(t, "Alt GmbH & Co", customers.Items()[1].Name)

	failWrites.Store(true)
	before := customers.Items()

	_, err = customers.Add(ctx, domain.CreateCustomerRequest{Name: "Fehler GmbH"})
	var notice *Notice
	require.ErrorAs(t, err, &notice)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, notice.Code)
	assert.Equal(t, "Anlegen fehlgeschlagen", notice.Message)

	assert.Error(t, customers.Delete(ctx, "c1"))
	assert.Equal(t, before, customers.Items())

	failWrites.Store(false)
	require.NoError(t, customers.Delete(ctx, "c1"))
	require.Len(t, customers.Items(), 1)
	assert.Equal(t, "c2", customers.Items()[0].ID)
}

func TestCollectionDiscardsLateResponses(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeBody(w, http.StatusOK, []*domain.Customer{{ID: "c1"}})
	}))
	defer srv.Close()

	customers := NewCollection(New(srv.URL), "/v1/customers", customerID)

	done := make(chan error, 1)
	go func() {
		_, err := customers.Fetch(context.Background(), nil)
		done <- err
	}()

	customers.Close()
	close(release)

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Empty(t, customers.Items())
}

func TestBoardMove(t *testing.T) {
	var moves atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/pipeline":
			writeBody(w, http.StatusOK, pipeline.GroupByStage([]*domain.Appointment{
				{ID: "a1", Result: domain.StagePending},
				{ID: "a2", Result: domain.StageAttended},
			}))
		case "/v1/pipeline/move":
			moves.Add(1)
			var req domain.MoveStageRequest
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &req)
			if req.AppointmentID == "a2" {
				writeBody(w, http.StatusForbidden, apiErrors.APIError{Code: apiErrors.ErrInsufficientPrivilege, Message: "Sem permissão"})
				return
			}
			writeBody(w, http.StatusOK, domain.MoveStageResponse{
				Moved:       true,
				Appointment: &domain.Appointment{ID: req.AppointmentID, Result: req.Destination},
			})
		}
	}))
	defer srv.Close()

	board := NewBoard(New(srv.URL))
	ctx := context.Background()

	_, err := board.Load(ctx)
	require.NoError(t, err)

	moved, err := board.Move(ctx, "a1", domain.StagePending)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, int32(0), moves.Load())

	moved, err = board.Move(ctx, "a1", domain.StageClosed)
	require.NoError(t, err)
	assert.True(t, moved)

	snapshot := board.Snapshot()
	assert.Empty(t, snapshot.Column(domain.StagePending).Appointments)
	require.Len(t, snapshot.Column(domain.StageClosed).Appointments, 1)

	_, err = board.Move(ctx, "a2", domain.StageClosed)
	var notice *Notice
	require.ErrorAs(t, err, &notice)
	assert.Equal(t, "Keine Berechtigung", notice.Title)
	snapshot = board.Snapshot()
	require.Len(t, snapshot.Column(domain.StageAttended).Appointments, 1)

	_, err = board.Move(ctx, "a1", domain.Stage("irgendwas"))
	assert.Error(t, err)
	assert.Equal(t, int32(2), moves.Load())
}

func TestBoardMoveKeepsDateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/pipeline":
			writeBody(w, http.StatusOK, pipeline.GroupByStage([]*domain.Appointment{
				{ID: "a3", Result: domain.StageClosed, Date: domain.NewDate(2025, 6, 10), Time: "10:00"},
				{ID: "a1", Result: domain.StagePending, Date: domain.NewDate(2025, 6, 11), Time: "14:00"},
				{ID: "a4", Result: domain.StageClosed, Date: domain.NewDate(2025, 6, 11), Time: "16:30"},
				{ID: "a5", Result: domain.StageClosed, Date: domain.NewDate(2025, 6, 12), Time: "09:00"},
			}))
		case "/v1/pipeline/move":
			writeBody(w, http.StatusOK, domain.MoveStageResponse{
				Moved: true,
				Appointment: &domain.Appointment{
					ID:     "a1",
					Result: domain.StageClosed,
					Date:   domain.NewDate(2025, 6, 11),
					Time:   "14:00",
				},
			})
		}
	}))
	defer srv.Close()

	board := NewBoard(New(srv.URL))
	ctx := context.Background()

	_, err := board.Load(ctx)
	require.NoError(t, err)

	moved, err := board.Move(ctx, "a1", domain.StageClosed)
	require.NoError(t, err)
	require.True(t, moved)

	snapshot := board.Snapshot()
	var ids []string
	for _, a := range snapshot.Column(domain.StageClosed).Appointments {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a3", "a1", "a4", "a5"}, ids)
}
