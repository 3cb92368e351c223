package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/goals/internal/integration/persistence"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func (failingStore) HealthCheck() bool {
	return false
}

func newTestEngine(store adapter.KeyValueStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ledger := goal.NewLedger(persistence.NewGoalRepository(store, ""), fixedClock{})
	goalController := NewGoalController(
		goal.NewListGoalsUseCase(ledger),
		goal.NewCreateGoalUseCase(ledger),
		goal.NewGetGoalUseCase(ledger),
		goal.NewUpdateGoalUseCase(ledger),
		goal.NewDeleteGoalUseCase(ledger),
		goal.NewGetSummaryUseCase(ledger),
		goal.NewSuggestMonthlyUseCase(ledger),
	)
	healthController := NewHealthController("memory", store.HealthCheck)

	engine := gin.New()
	engine.GET("/health", healthController.Check)
	goals := engine.Group("/api/v1/goals")
	goals.GET("", goalController.List)
	goals.GET("/summary", goalController.Summary)
	goals.POST("/suggest", goalController.Suggest)
	goals.POST("", goalController.Create)
	goals.GET("/:id", goalController.Get)
	goals.PUT("/:id", goalController.Update)
	goals.DELETE("/:id", goalController.Delete)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			if raw, err = json.Marshal(b); err != nil {
				t.Fatalf("failed to marshal body: %v", err)
			}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %s: %v", w.Body.String(), err)
	}
	return out
}

func TestGoalController_List(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	w := doRequest(t, engine, http.MethodGet, "/api/v1/goals?sort=deadline", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	response := decode[dto.GoalListResponse](t, w)
	if len(response.Goals) != 5 {
		t.Fatalf("expected 5 seed goals, got %d", len(response.Goals))
	}
	if response.Goals[0].Deadline != "2025-03-31" {
		t.Errorf("expected earliest deadline first, got %s", response.Goals[0].Deadline)
	}

	w = doRequest(t, engine, http.MethodGet, "/api/v1/goals?category=holiday", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d", w.Code)
	}
	errResp := decode[dto.ErrorResponse](t, w)
	if errResp.Code != string(domainerror.ErrCodeInvalidListQuery) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidListQuery, errResp.Code)
	}
}

func TestGoalController_ListDefaultsToPriority(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	w := doRequest(t, engine, http.MethodPost, "/api/v1/goals", map[string]any{
		"name":          "Rainy Day",
		"target_amount": 3000,
		"deadline":      "2027-06-01",
		"priority":      "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, engine, http.MethodGet, "/api/v1/goals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	response := decode[dto.GoalListResponse](t, w)
	want := []string{"high", "high", "high", "medium", "medium", "low"}
	if len(response.Goals) != len(want) {
		t.Fatalf("expected %d goals, got %d", len(want), len(response.Goals))
	}
	for i, g := range response.Goals {
		if g.Priority != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], g.Priority)
		}
	}
	if response.Goals[2].Name != "Rainy Day" {
		t.Errorf("expected new high goal after seeded high goals, got %s", response.Goals[2].Name)
	}
}

func TestGoalController_CreateAndGet(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	w := doRequest(t, engine, http.MethodPost, "/api/v1/goals", map[string]any{
		"name":                 "Emergency Fund",
		"category":             "emergency",
		"target_amount":        15000,
		"current_amount":       8500,
		"deadline":             "2027-03-23",
		"monthly_contribution": 500,
		"priority":             "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	created := decode[dto.GoalResponse](t, w)
	if created.ID == "" || created.CreatedAt != "2026-10-14" {
		t.Errorf("expected id and createdAt 2026-10-14, got %q %q", created.ID, created.CreatedAt)
	}
	if !created.Automate {
		t.Error("expected automate to default to true")
	}

	m := created.Metrics
	if m.ProgressPercent.String() != "56.67" {
		t.Errorf("expected progress 56.67, got %s", m.ProgressPercent)
	}
	if m.DaysRemaining != 160 || m.MonthsRemaining != 6 {
		t.Errorf("expected 160 days / 6 months, got %d / %d", m.DaysRemaining, m.MonthsRemaining)
	}
	if m.RequiredMonthly.String() != "1083.33" || m.Pacing != "behind_pace" {
		t.Errorf("expected 1083.33 behind_pace, got %s %s", m.RequiredMonthly, m.Pacing)
	}

	w = doRequest(t, engine, http.MethodGet, "/api/v1/goals/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[dto.GoalResponse](t, w); got.Name != "Emergency Fund" {
		t.Errorf("expected created goal, got %+v", got)
	}
}

func TestGoalController_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      any
		wantCode  string
		wantField string
	}{
		{
			name:      "negative target",
			body:      map[string]any{"name": "A", "target_amount": -5, "deadline": "2027-01-01"},
			wantCode:  string(domainerror.ErrCodeInvalidGoalField),
			wantField: goal.FieldTargetAmount,
		},
		{
			name:      "bad deadline",
			body:      map[string]any{"name": "A", "target_amount": 5, "deadline": "tomorrow"},
			wantCode:  string(domainerror.ErrCodeInvalidGoalField),
			wantField: goal.FieldDeadline,
		},
		{
			name:     "malformed json",
			body:     `{"name": `,
			wantCode: string(domainerror.ErrCodeMissingGoalFields),
		},
		{
			name:     "non numeric amount",
			body:     `{"name":"A","target_amount":"lots","deadline":"2027-01-01"}`,
			wantCode: string(domainerror.ErrCodeMissingGoalFields),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(persistence.NewMemoryStore())

			w := doRequest(t, engine, http.MethodPost, "/api/v1/goals", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			errResp := decode[dto.ErrorResponse](t, w)
			if errResp.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, errResp.Code)
			}
			if tt.wantField != "" && errResp.Details != tt.wantField {
				t.Errorf("expected details %s, got %s", tt.wantField, errResp.Details)
			}
		})
	}
}

func TestGoalController_UpdateAndDelete(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	body := map[string]any{
		"name":           "Emergency Fund",
		"category":       "emergency",
		"target_amount":  5000,
		"current_amount": 5000,
		"deadline":       "2027-06-30",
	}

	w := doRequest(t, engine, http.MethodPut, "/api/v1/goals/1", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decode[dto.GoalResponse](t, w)
	if updated.ID != "1" || updated.CreatedAt != "2024-01-15" {
		t.Errorf("expected identity preserved, got %s %s", updated.ID, updated.CreatedAt)
	}
	if !updated.Metrics.Completed {
		t.Error("expected funded goal to be completed")
	}

	w = doRequest(t, engine, http.MethodPut, "/api/v1/goals/missing", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	for i := 0; i < 2; i++ {
		w = doRequest(t, engine, http.MethodDelete, "/api/v1/goals/1", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("delete %d: expected 204, got %d", i+1, w.Code)
		}
	}

	w = doRequest(t, engine, http.MethodGet, "/api/v1/goals/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGoalController_Summary(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	w := doRequest(t, engine, http.MethodGet, "/api/v1/goals/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	summary := decode[dto.GoalSummaryResponse](t, w)
	if summary.GoalCount != 5 || summary.AutomatedCount != 3 || summary.AutomatedPercent != 60 {
		t.Errorf("expected 5 goals, 3 automated (60%%), got %+v", summary)
	}
	if summary.TotalTarget.String() != "113000" || summary.TotalCurrent.String() != "50000" {
		t.Errorf("expected totals 113000/50000, got %s/%s", summary.TotalTarget, summary.TotalCurrent)
	}
	if summary.MonthlyRequiredTotal.String() != "3500" {
		t.Errorf("expected monthly total 3500, got %s", summary.MonthlyRequiredTotal)
	}
}

func TestGoalController_Suggest(t *testing.T) {
	engine := newTestEngine(persistence.NewMemoryStore())

	w := doRequest(t, engine, http.MethodPost, "/api/v1/goals/suggest", map[string]any{
		"target_amount":  15000,
		"current_amount": 8500,
		"deadline":       "2027-03-23",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode[dto.SuggestMonthlyResponse](t, w); got.SuggestedMonthly.String() != "1084" {
		t.Errorf("expected 1084, got %s", got.SuggestedMonthly)
	}
}

func TestGoalController_StorageUnavailable(t *testing.T) {
	engine := newTestEngine(failingStore{})

	w := doRequest(t, engine, http.MethodGet, "/api/v1/goals", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if errResp := decode[dto.ErrorResponse](t, w); errResp.Code != string(domainerror.ErrCodeGoalStorageRead) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalStorageRead, errResp.Code)
	}

	w = doRequest(t, engine, http.MethodGet, "/health", nil)
	health := decode[HealthResponse](t, w)
	if health.Status != "ok" || health.Storage != "disconnected" {
		t.Errorf("expected ok/disconnected, got %s/%s", health.Status, health.Storage)
	}
}
