// internal/api/schedule/handlers.go
package schedule

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/api/apiutil"
	"github.com/kvesterberg/fixturedesk/internal/api/notifications"
	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/templates/layouts"
)

const scheduleQueryTimeout = 5 * time.Second

// stage filter value meaning "no stage filter"
const stageFilterAll = "all"

var queries *dbgen.Queries

func InitHandlers(q *dbgen.Queries) {
	queries = q
}

func loadQueries() *dbgen.Queries {
	return queries
}

// seasonView bundles everything the games table needs for one season.
type seasonView struct {
	Season dbgen.Season
	Stages []dbgen.Stage
	Teams  []dbgen.Team
	Games  []dbgen.Game
}

// GET /schedule
//
// Public schedule browser. The first competition and its first season are
// preselected so the page is never empty when data exists.
func HandleSchedulePage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scheduleQueryTimeout)
	defer cancel()

	competitions, err := q.ListCompetitions(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list competitions", err)
		http.Error(w, "Failed to load schedule", http.StatusInternalServerError)
		return
	}

	var seasons []dbgen.Season
	var selected *seasonView
	if len(competitions) > 0 {
		seasons, err = q.ListSeasonsByCompetition(ctx, competitions[0].ID)
		if err != nil {
			notifications.LogError(logger.Error().Str("competition_id", competitions[0].ID.String()), "Failed to list seasons", err)
			http.Error(w, "Failed to load schedule", http.StatusInternalServerError)
			return
		}
		if len(seasons) > 0 {
			view, err := loadSeasonView(ctx, q, seasons[0].ID, uuid.Nil)
			if err != nil {
				notifications.LogError(logger.Error().Str("season_id", seasons[0].ID.String()), "Failed to load season view", err)
				http.Error(w, "Failed to load schedule", http.StatusInternalServerError)
				return
			}
			selected = &view
		}
	}

	page := layouts.Base(schedulePageComponent(competitions, seasons, selected), "Schedule")
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render schedule page", "Failed to render page") {
		return
	}
}

// GET /v1/schedule/seasons?competition_id=...
//
// Season selector partial for the chosen competition, with the first season's
// games preloaded.
func HandleScheduleSeasons(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.UUIDFromQuery(r, "competition_id")
	if err != nil || competitionID == uuid.Nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scheduleQueryTimeout)
	defer cancel()

	seasons, err := q.ListSeasonsByCompetition(ctx, competitionID)
	if err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to list seasons", err)
		http.Error(w, "Failed to load seasons", http.StatusInternalServerError)
		return
	}

	var selected *seasonView
	if len(seasons) > 0 {
		view, err := loadSeasonView(ctx, q, seasons[0].ID, uuid.Nil)
		if err != nil {
			notifications.LogError(logger.Error().Str("season_id", seasons[0].ID.String()), "Failed to load season view", err)
			http.Error(w, "Failed to load seasons", http.StatusInternalServerError)
			return
		}
		selected = &view
	}

	component := seasonsSelectorComponent(seasons, selected)
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render season selector", "Failed to render seasons") {
		return
	}
}

// GET /v1/schedule/games?season_id=...&stage_id=all|<uuid>
//
// Stage selector plus games table for one season. Idempotent; safe to reload
// on every selector change.
func HandleScheduleGames(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := apiutil.UUIDFromQuery(r, "season_id")
	if err != nil || seasonID == uuid.Nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	stageFilter := uuid.Nil
	if raw := r.URL.Query().Get("stage_id"); raw != "" && raw != stageFilterAll {
		stageFilter, err = apiutil.ParseUUIDField(raw, "stage_id")
		if err != nil {
			http.Error(w, "Invalid stage ID", http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), scheduleQueryTimeout)
	defer cancel()

	view, err := loadSeasonView(ctx, q, seasonID, stageFilter)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Season not found", http.StatusNotFound)
		return
	}
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to load season view", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	component := gamesTableComponent(view, stageFilter)
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render games table", "Failed to render games") {
		return
	}
}

func loadSeasonView(ctx context.Context, q *dbgen.Queries, seasonID, stageFilter uuid.UUID) (seasonView, error) {
	season, err := q.GetSeason(ctx, seasonID)
	if err != nil {
		return seasonView{}, err
	}
	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		return seasonView{}, err
	}
	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		return seasonView{}, err
	}

	var games []dbgen.Game
	if stageFilter != uuid.Nil {
		games, err = q.ListGamesByStage(ctx, uuid.NullUUID{UUID: stageFilter, Valid: true})
	} else {
		games, err = q.ListGamesBySeason(ctx, seasonID)
	}
	if err != nil {
		return seasonView{}, err
	}

	return seasonView{
		Season: season,
		Stages: stages,
		Teams:  teams,
		Games:  games,
	}, nil
}
