// internal/api/schedule/handlers_test.go
package schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/testutil"
)

type scheduleFixture struct {
	Queries     *dbgen.Queries
	Competition dbgen.Competition
	Season      dbgen.Season
	Regular     dbgen.Stage
	Finals      dbgen.Stage
	Teams       []dbgen.Team
}

func setupScheduleFixture(t *testing.T) scheduleFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	InitHandlers(database.Queries)

	ctx := context.Background()
	now := time.Now()
	q := database.Queries

	competition, err := q.CreateCompetition(ctx, dbgen.CreateCompetitionParams{
		ID: uuid.New(), Name: "Island League", CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert competition: %v", err)
	}

	season, err := q.CreateSeason(ctx, dbgen.CreateSeasonParams{
		ID:            uuid.New(),
		CompetitionID: competition.ID,
		StartDate:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		t.Fatalf("insert season: %v", err)
	}

	regular, err := q.CreateStage(ctx, dbgen.CreateStageParams{
		ID: uuid.New(), SeasonID: season.ID, Name: "Regular", StageType: "regular",
		OrderIndex: 1, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert stage: %v", err)
	}
	finals, err := q.CreateStage(ctx, dbgen.CreateStageParams{
		ID: uuid.New(), SeasonID: season.ID, Name: "Finals", StageType: "finals",
		OrderIndex: 2, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert stage: %v", err)
	}

	teams := make([]dbgen.Team, 2)
	for i := range teams {
		team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Islanders %02d", i),
			Abbreviation: fmt.Sprintf("I%02d", i),
			Location:     "Island",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			t.Fatalf("insert team: %v", err)
		}
		teams[i] = team
		if err := q.AddSeasonTeam(ctx, dbgen.AddSeasonTeamParams{
			ID: uuid.New(), SeasonID: season.ID, TeamID: team.ID,
			CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("insert season team: %v", err)
		}
	}

	createGame := func(stageID uuid.UUID, date time.Time) {
		_, err := q.CreateGame(ctx, dbgen.CreateGameParams{
			ID:         uuid.New(),
			SeasonID:   season.ID,
			StageID:    uuid.NullUUID{UUID: stageID, Valid: true},
			Date:       date,
			HomeTeamID: teams[0].ID,
			AwayTeamID: teams[1].ID,
			Status:     "scheduled",
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			t.Fatalf("insert game: %v", err)
		}
	}
	createGame(regular.ID, time.Date(2026, time.February, 1, 15, 0, 0, 0, time.UTC))
	createGame(finals.ID, time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC))

	return scheduleFixture{
		Queries:     database.Queries,
		Competition: competition,
		Season:      season,
		Regular:     regular,
		Finals:      finals,
		Teams:       teams,
	}
}

func TestHandleSchedulePagePreselectsFirstSeason(t *testing.T) {
	fixture := setupScheduleFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rec := httptest.NewRecorder()

	HandleSchedulePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Island League") {
		t.Errorf("expected competition option, got page without it")
	}
	// Both seeded games are in the preselected season, so the table shows
	// both teams without any further request.
	if !strings.Contains(body, fixture.Teams[0].Name) || !strings.Contains(body, fixture.Teams[1].Name) {
		t.Errorf("expected preloaded games for first season")
	}
}

func TestHandleSchedulePageEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	InitHandlers(database.Queries)

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rec := httptest.NewRecorder()

	HandleSchedulePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No competitions yet") {
		t.Errorf("expected empty state, got %q", rec.Body.String())
	}
}

func TestHandleScheduleSeasons(t *testing.T) {
	fixture := setupScheduleFixture(t)

	url := "/v1/schedule/seasons?competition_id=" + fixture.Competition.ID.String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	HandleScheduleSeasons(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, fixture.Season.ID.String()) {
		t.Errorf("expected season option, got %q", body)
	}
	if !strings.Contains(body, `id="schedule-games"`) {
		t.Errorf("expected games container, got %q", body)
	}
}

func TestHandleScheduleSeasonsRequiresCompetition(t *testing.T) {
	fixture := setupScheduleFixture(t)
	_ = fixture

	req := httptest.NewRequest(http.MethodGet, "/v1/schedule/seasons", nil)
	rec := httptest.NewRecorder()

	HandleScheduleSeasons(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleScheduleGamesUnknownSeason(t *testing.T) {
	fixture := setupScheduleFixture(t)
	_ = fixture

	url := "/v1/schedule/games?season_id=" + uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	HandleScheduleGames(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown season, got %d", rec.Code)
	}
}

func TestHandleScheduleGamesStageFilter(t *testing.T) {
	fixture := setupScheduleFixture(t)

	allURL := fmt.Sprintf("/v1/schedule/games?season_id=%s&stage_id=all", fixture.Season.ID)
	req := httptest.NewRequest(http.MethodGet, allURL, nil)
	rec := httptest.NewRecorder()

	HandleScheduleGames(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.Count(rec.Body.String(), "<tr class=\"border-b\">"); got != 2 {
		t.Errorf("expected 2 game rows for all stages, got %d", got)
	}

	finalsURL := fmt.Sprintf("/v1/schedule/games?season_id=%s&stage_id=%s", fixture.Season.ID, fixture.Finals.ID)
	req = httptest.NewRequest(http.MethodGet, finalsURL, nil)
	rec = httptest.NewRecorder()

	HandleScheduleGames(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.Count(rec.Body.String(), "<tr class=\"border-b\">"); got != 1 {
		t.Errorf("expected 1 game row for finals filter, got %d", got)
	}
}
