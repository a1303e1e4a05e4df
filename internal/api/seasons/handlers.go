// internal/api/seasons/handlers.go
package seasons

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/zero"
	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/api/apiutil"
	"github.com/kvesterberg/fixturedesk/internal/api/htmx"
	"github.com/kvesterberg/fixturedesk/internal/api/nav"
	"github.com/kvesterberg/fixturedesk/internal/api/notifications"
	appdb "github.com/kvesterberg/fixturedesk/internal/db"
	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/rules"
	"github.com/kvesterberg/fixturedesk/internal/templates/layouts"
)

const (
	seasonQueryTimeout   = 5 * time.Second
	competitionIDPathKey = "id"
	seasonIDPathKey      = "season_id"
	stageIDPathKey       = "stage_id"
)

var (
	database *appdb.DB
	queries  *dbgen.Queries
)

type stageRequest struct {
	ID         *uuid.UUID `json:"id"`
	Name       string     `json:"name"`
	StageType  string     `json:"stage_type"`
	OrderIndex int32      `json:"order_index"`
}

type seasonRequest struct {
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Teams     []uuid.UUID    `json:"teams"`
	Stages    []stageRequest `json:"stages"`
}

type stageResponse struct {
	ID         uuid.UUID `json:"id"`
	SeasonID   uuid.UUID `json:"season_id"`
	Name       string    `json:"name"`
	StageType  string    `json:"stage_type"`
	OrderIndex int32     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	DeletedAt  zero.Time `json:"deleted_at"`
}

type teamResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	DeletedAt    zero.Time `json:"deleted_at"`
}

type seasonResponse struct {
	ID            uuid.UUID       `json:"id"`
	CompetitionID uuid.UUID       `json:"competition_id"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Teams         []teamResponse  `json:"teams"`
	Stages        []stageResponse `json:"stages"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     zero.Time       `json:"deleted_at"`
}

// seasonAggregate is a season with its roster and ordered stages loaded.
type seasonAggregate struct {
	Season dbgen.Season
	Teams  []dbgen.Team
	Stages []dbgen.Stage
}

func toSeasonResponse(agg seasonAggregate) seasonResponse {
	teams := make([]teamResponse, 0, len(agg.Teams))
	for _, team := range agg.Teams {
		teams = append(teams, teamResponse{
			ID:           team.ID,
			Name:         team.Name,
			Abbreviation: team.Abbreviation,
			Location:     team.Location,
			CreatedAt:    team.CreatedAt,
			UpdatedAt:    team.UpdatedAt,
			DeletedAt:    zero.TimeFrom(team.DeletedAt.Time),
		})
	}

	stages := make([]stageResponse, 0, len(agg.Stages))
	for _, stage := range agg.Stages {
		stages = append(stages, stageResponse{
			ID:         stage.ID,
			SeasonID:   stage.SeasonID,
			Name:       stage.Name,
			StageType:  stage.StageType,
			OrderIndex: int32(stage.OrderIndex),
			CreatedAt:  stage.CreatedAt,
			UpdatedAt:  stage.UpdatedAt,
			DeletedAt:  zero.TimeFrom(stage.DeletedAt.Time),
		})
	}

	return seasonResponse{
		ID:            agg.Season.ID,
		CompetitionID: agg.Season.CompetitionID,
		StartDate:     agg.Season.StartDate,
		EndDate:       agg.Season.EndDate,
		Teams:         teams,
		Stages:        stages,
		CreatedAt:     agg.Season.CreatedAt,
		UpdatedAt:     agg.Season.UpdatedAt,
		DeletedAt:     zero.TimeFrom(agg.Season.DeletedAt.Time),
	}
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	if db == nil {
		return
	}
	database = db
	queries = db.Queries
}

// GET /competitions/{id}/seasons
func HandleSeasonsPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.UUIDFromPath(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	competition, err := q.GetCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Competition not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to fetch competition", err)
		http.Error(w, "Failed to fetch competition", http.StatusInternalServerError)
		return
	}

	aggregates, err := listSeasonAggregates(ctx, q, competitionID)
	if err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to list seasons", err)
		http.Error(w, "Failed to load seasons", http.StatusInternalServerError)
		return
	}

	crumbs := nav.BuildBreadcrumbs(
		r.Context(),
		nav.Params{CompetitionID: competitionID.String()},
		"/competitions/{id}/seasons",
		nav.CompetitionResolver(),
	)
	page := layouts.Base(layouts.Stack(nav.BreadcrumbsComponent(crumbs), seasonsPageComponent(competition, aggregates)), competition.Name+" seasons")
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render seasons page", "Failed to render page") {
		return
	}
}

// GET /v1/competitions/{id}/seasons
func HandleSeasonsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.UUIDFromPath(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if _, err := q.GetCompetition(ctx, competitionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Competition not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to fetch competition", err)
		http.Error(w, "Failed to fetch competition", http.StatusInternalServerError)
		return
	}

	aggregates, err := listSeasonAggregates(ctx, q, competitionID)
	if err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to list seasons", err)
		http.Error(w, "Failed to list seasons", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := seasonsListComponent(competitionID, aggregates)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render seasons list", "Failed to render list") {
			return
		}
		return
	}

	responses := make([]seasonResponse, 0, len(aggregates))
	for _, agg := range aggregates {
		responses = append(responses, toSeasonResponse(agg))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, responses); err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to write seasons response", err)
	}
}

// POST /v1/competitions/{id}/seasons
func HandleSeasonCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	db := loadDatabase()
	if db == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.UUIDFromPath(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	var req seasonRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if result := rules.ValidateSeason(toSeasonCandidate(req)); !result.Valid() {
		if err := apiutil.WriteValidation(w, result); err != nil {
			notifications.LogError(logger.Error(), "Failed to write validation response", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if _, err := db.Queries.GetCompetition(ctx, competitionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Competition not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to fetch competition", err)
		http.Error(w, "Failed to fetch competition", http.StatusInternalServerError)
		return
	}

	var agg seasonAggregate
	err = db.RunInTx(ctx, func(tx *appdb.DB) error {
		var txErr error
		agg, txErr = createSeason(ctx, tx.Queries, req, competitionID)
		return txErr
	})
	if err != nil {
		if errors.Is(err, errTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to create season", err)
		http.Error(w, "Failed to create season", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshSeasonsList",
		}
		component := seasonDetailComponent(agg)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render season detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, toSeasonResponse(agg)); err != nil {
		notifications.LogError(logger.Error().Str("season_id", agg.Season.ID.String()), "Failed to write season response", err)
	}
}

// GET /v1/competitions/{id}/seasons/{season_id}
func HandleSeasonDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := seasonPathIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	agg, ok := fetchSeasonAggregate(ctx, w, logger, q, competitionID, seasonID)
	if !ok {
		return
	}

	if htmx.IsRequest(r) {
		component := seasonDetailComponent(agg)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render season detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toSeasonResponse(agg)); err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to write season response", err)
	}
}

// PUT /v1/competitions/{id}/seasons/{season_id}
func HandleSeasonUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	db := loadDatabase()
	if db == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := seasonPathIDs(w, r)
	if !ok {
		return
	}

	var req seasonRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if result := rules.ValidateSeason(toSeasonCandidate(req)); !result.Valid() {
		if err := apiutil.WriteValidation(w, result); err != nil {
			notifications.LogError(logger.Error(), "Failed to write validation response", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if _, ok := fetchSeasonAggregate(ctx, w, logger, db.Queries, competitionID, seasonID); !ok {
		return
	}

	var agg seasonAggregate
	err := db.RunInTx(ctx, func(tx *appdb.DB) error {
		var txErr error
		agg, txErr = updateSeason(ctx, tx.Queries, req, seasonID)
		return txErr
	})
	if err != nil {
		if errors.Is(err, errTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, errStageNotFound) {
			http.Error(w, "Stage not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to update season", err)
		http.Error(w, "Failed to update season", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshSeasonsList",
		}
		component := seasonDetailComponent(agg)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render season detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toSeasonResponse(agg)); err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to write season response", err)
	}
}

// DELETE /v1/competitions/{id}/seasons/{season_id}
func HandleSeasonDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	db := loadDatabase()
	if db == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := seasonPathIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if _, ok := fetchSeasonAggregate(ctx, w, logger, db.Queries, competitionID, seasonID); !ok {
		return
	}

	err := db.RunInTx(ctx, func(tx *appdb.DB) error {
		return deleteSeason(ctx, tx.Queries, seasonID)
	})
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to delete season", err)
		http.Error(w, "Failed to delete season", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshSeasonsList",
		}
		component := notifications.ToastComponent("Season deleted", notifications.SuccessToastMillis)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render delete response", "Failed to render response") {
			return
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /v1/competitions/{id}/seasons/{season_id}/stages/{stage_id}/move
// Moves a stage one position up or down; a move at either boundary is a no-op.
func HandleStageMove(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	db := loadDatabase()
	if db == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := seasonPathIDs(w, r)
	if !ok {
		return
	}

	stageID, err := apiutil.UUIDFromPath(r, stageIDPathKey)
	if err != nil {
		http.Error(w, "Invalid stage ID", http.StatusBadRequest)
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction != "up" && direction != "down" {
		http.Error(w, "direction must be up or down", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), seasonQueryTimeout)
	defer cancel()

	if _, ok := fetchSeasonAggregate(ctx, w, logger, db.Queries, competitionID, seasonID); !ok {
		return
	}

	var agg seasonAggregate
	err = db.RunInTx(ctx, func(tx *appdb.DB) error {
		var txErr error
		agg, txErr = moveStage(ctx, tx.Queries, seasonID, stageID, direction)
		return txErr
	})
	if err != nil {
		if errors.Is(err, errStageNotFound) {
			http.Error(w, "Stage not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("stage_id", stageID.String()), "Failed to move stage", err)
		http.Error(w, "Failed to move stage", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := stagesListComponent(competitionID, agg)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render stages list", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toSeasonResponse(agg)); err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to write season response", err)
	}
}

func toSeasonCandidate(req seasonRequest) rules.SeasonCandidate {
	stages := make([]rules.StageCandidate, 0, len(req.Stages))
	for _, stage := range req.Stages {
		stages = append(stages, rules.StageCandidate{
			ID:         stage.ID,
			Name:       stage.Name,
			StageType:  rules.StageType(stage.StageType),
			OrderIndex: stage.OrderIndex,
		})
	}
	return rules.SeasonCandidate{
		Start:  req.StartDate,
		End:    req.EndDate,
		Teams:  req.Teams,
		Stages: stages,
	}
}

func seasonPathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	competitionID, err := apiutil.UUIDFromPath(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	seasonID, err := apiutil.UUIDFromPath(r, seasonIDPathKey)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return competitionID, seasonID, true
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDatabase() *appdb.DB {
	return database
}
