// internal/api/teams/handlers_test.go
package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/testutil"
)

func setupHandlers(t *testing.T) *dbgen.Queries {
	t.Helper()
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	return database.Queries
}

func createTeamFixture(t *testing.T, q *dbgen.Queries, name, abbreviation string) dbgen.Team {
	t.Helper()
	now := time.Now()
	team, err := q.CreateTeam(context.Background(), dbgen.CreateTeamParams{
		ID:           uuid.New(),
		Name:         name,
		Abbreviation: abbreviation,
		Location:     "Testville",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("insert team: %v", err)
	}
	return team
}

func postTeamJSON(t *testing.T, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleTeamCreate(rec, req)
	return rec
}

func TestHandleTeamCreate(t *testing.T) {
	setupHandlers(t)

	rec := postTeamJSON(t, map[string]string{
		"name":         "Preston Rovers",
		"abbreviation": "pre",
		"location":     "Preston",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Abbreviation != "PRE" {
		t.Errorf("expected abbreviation uppercased, got %q", resp.Abbreviation)
	}
	if resp.Location != "Preston" {
		t.Errorf("expected location round-tripped, got %q", resp.Location)
	}
}

func TestHandleTeamCreateValidation(t *testing.T) {
	setupHandlers(t)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"missing name", map[string]string{"abbreviation": "PRE"}},
		{"short name", map[string]string{"name": "ab", "abbreviation": "PRE"}},
		{"missing abbreviation", map[string]string{"name": "Preston Rovers"}},
		{"abbreviation too long", map[string]string{"name": "Preston Rovers", "abbreviation": "PRESX"}},
		{"abbreviation with digits", map[string]string{"name": "Preston Rovers", "abbreviation": "P1"}},
		{"location too short", map[string]string{"name": "Preston Rovers", "abbreviation": "PRE", "location": "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := postTeamJSON(t, tc.payload); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleTeamCreateLocationOptional(t *testing.T) {
	setupHandlers(t)

	rec := postTeamJSON(t, map[string]string{
		"name":         "Harbour City",
		"abbreviation": "HAR",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleTeamsList(t *testing.T) {
	q := setupHandlers(t)
	createTeamFixture(t, q, "Alpha", "ALP")
	createTeamFixture(t, q, "Beta", "BET")

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()

	HandleTeamsList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(resp))
	}
}

func TestHandleTeamUpdate(t *testing.T) {
	q := setupHandlers(t)
	team := createTeamFixture(t, q, "Old Town", "OLD")

	body := strings.NewReader(`{"name": "New Town", "abbreviation": "NEW", "location": "Newville"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/teams/"+team.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue(teamIDPathKey, team.ID.String())
	rec := httptest.NewRecorder()

	HandleTeamUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "New Town" || resp.Abbreviation != "NEW" {
		t.Errorf("expected updated fields, got %+v", resp)
	}
}

func TestHandleTeamDelete(t *testing.T) {
	q := setupHandlers(t)
	team := createTeamFixture(t, q, "Doomed United", "DOO")

	req := httptest.NewRequest(http.MethodDelete, "/v1/teams/"+team.ID.String(), nil)
	req.SetPathValue(teamIDPathKey, team.ID.String())
	rec := httptest.NewRecorder()

	HandleTeamDelete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, err := q.GetTeam(context.Background(), team.ID); err == nil {
		t.Error("expected deleted team to be hidden from reads")
	}
}

func TestHandleTeamDeleteHTMXShowsToast(t *testing.T) {
	q := setupHandlers(t)
	team := createTeamFixture(t, q, "Doomed United", "DOO")

	req := httptest.NewRequest(http.MethodDelete, "/v1/teams/"+team.ID.String(), nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue(teamIDPathKey, team.ID.String())
	rec := httptest.NewRecorder()

	HandleTeamDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Trigger") != "refreshTeamsList" {
		t.Errorf("expected refresh trigger header, got %q", rec.Header().Get("HX-Trigger"))
	}
	if !strings.Contains(rec.Body.String(), "Team deleted") {
		t.Errorf("expected success toast, got %q", rec.Body.String())
	}
}

func TestHandleTeamsListLogsSanitizedFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database)
	// Closing the connection forces the list query to fail.
	if err := database.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req = req.WithContext(logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	HandleTeamsList(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"sanitized_message":"failed to list teams"`) {
		t.Errorf("expected sanitized message in log, got %s", out)
	}
	if !strings.Contains(out, `"error":`) {
		t.Errorf("expected raw error in log, got %s", out)
	}
}

func TestHandleTeamDetailNotFound(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/"+uuid.NewString(), nil)
	req.SetPathValue(teamIDPathKey, uuid.NewString())
	rec := httptest.NewRecorder()

	HandleTeamDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
