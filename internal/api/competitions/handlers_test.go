// internal/api/competitions/handlers_test.go
package competitions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/testutil"
)

func setupHandlers(t *testing.T) *dbgen.Queries {
	t.Helper()
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	return database.Queries
}

func createCompetitionFixture(t *testing.T, q *dbgen.Queries, name string) dbgen.Competition {
	t.Helper()
	now := time.Now()
	competition, err := q.CreateCompetition(context.Background(), dbgen.CreateCompetitionParams{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert competition: %v", err)
	}
	return competition
}

func TestHandleCompetitionCreateJSON(t *testing.T) {
	setupHandlers(t)

	body := strings.NewReader(`{"name": "Premier League"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/competitions", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	HandleCompetitionCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp competitionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Premier League" {
		t.Errorf("expected name round-tripped, got %q", resp.Name)
	}
	if resp.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if !resp.DeletedAt.IsZero() {
		t.Error("expected null deleted_at on create")
	}
}

func TestHandleCompetitionCreateNameBounds(t *testing.T) {
	setupHandlers(t)

	for _, name := range []string{"", "ab", strings.Repeat("x", 101)} {
		payload, _ := json.Marshal(map[string]string{"name": name})
		req := httptest.NewRequest(http.MethodPost, "/v1/competitions", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		HandleCompetitionCreate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("name %q: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestHandleCompetitionCreateForm(t *testing.T) {
	setupHandlers(t)

	form := strings.NewReader("name=Winter+Cup")
	req := httptest.NewRequest(http.MethodPost, "/v1/competitions", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	HandleCompetitionCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("HX-Trigger") != "refreshCompetitionsList" {
		t.Errorf("expected refresh trigger header, got %q", rec.Header().Get("HX-Trigger"))
	}
	if !strings.Contains(rec.Body.String(), "Winter Cup") {
		t.Errorf("expected rendered card, got %q", rec.Body.String())
	}
}

func TestHandleCompetitionsListJSON(t *testing.T) {
	q := setupHandlers(t)
	createCompetitionFixture(t, q, "League One")
	createCompetitionFixture(t, q, "League Two")

	req := httptest.NewRequest(http.MethodGet, "/v1/competitions", nil)
	rec := httptest.NewRecorder()

	HandleCompetitionsList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []competitionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(resp))
	}
}

func TestHandleCompetitionDetailNotFound(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/competitions/"+uuid.NewString(), nil)
	req.SetPathValue(competitionIDPathKey, uuid.NewString())
	rec := httptest.NewRecorder()

	HandleCompetitionDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleCompetitionUpdate(t *testing.T) {
	q := setupHandlers(t)
	competition := createCompetitionFixture(t, q, "Old Name")

	body := strings.NewReader(`{"name": "New Name"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/competitions/"+competition.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue(competitionIDPathKey, competition.ID.String())
	rec := httptest.NewRecorder()

	HandleCompetitionUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp competitionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "New Name" {
		t.Errorf("expected updated name, got %q", resp.Name)
	}
}

func TestHandleCompetitionDeleteSoftDeletes(t *testing.T) {
	q := setupHandlers(t)
	competition := createCompetitionFixture(t, q, "Doomed League")

	req := httptest.NewRequest(http.MethodDelete, "/v1/competitions/"+competition.ID.String(), nil)
	req.SetPathValue(competitionIDPathKey, competition.ID.String())
	rec := httptest.NewRecorder()

	HandleCompetitionDelete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	if _, err := q.GetCompetition(context.Background(), competition.ID); err == nil {
		t.Error("expected deleted competition to be hidden from reads")
	}

	// Deleting again reports not found.
	req = httptest.NewRequest(http.MethodDelete, "/v1/competitions/"+competition.ID.String(), nil)
	req.SetPathValue(competitionIDPathKey, competition.ID.String())
	rec = httptest.NewRecorder()

	HandleCompetitionDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}
