package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"printer_sync/internal/models"
	"printer_sync/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockMonitoring serves a fixed state; push feeds Watch subscribers.
type mockMonitoring struct {
	state models.PrinterState
	err   error

	mu      sync.Mutex
	watchCh chan models.PrinterState
	stopped bool
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.PrinterState, error) {
	return m.state, m.err
}

func (m *mockMonitoring) Watch(buffer int) (<-chan models.PrinterState, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watchCh == nil {
		m.watchCh = make(chan models.PrinterState, 8)
	}
	return m.watchCh, func() {
		m.mu.Lock()
		m.stopped = true
		m.mu.Unlock()
	}
}

func (m *mockMonitoring) push(st models.PrinterState) {
	m.mu.Lock()
	if m.watchCh == nil {
		m.watchCh = make(chan models.PrinterState, 8)
	}
	ch := m.watchCh
	m.mu.Unlock()
	ch <- st
}

func (m *mockMonitoring) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

type mockEventLog struct {
	resp     []models.PrinterEvent
	err      error
	calls    int
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.PrinterEvent, error) {
	m.calls++
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func doRequest(r http.Handler, method, target, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}
