// internal/api/games/handlers.go
package games

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/zero"
	"github.com/rs/zerolog"
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
	gameQueryTimeout     = 5 * time.Second
	competitionIDPathKey = "id"
	seasonIDPathKey      = "season_id"
	gameIDPathKey        = "game_id"
)

var (
	queries *dbgen.Queries
)

type gameRequest struct {
	StageID    *uuid.UUID `json:"stage_id"`
	Date       time.Time  `json:"date"`
	HomeTeamID uuid.UUID  `json:"home_team_id"`
	AwayTeamID uuid.UUID  `json:"away_team_id"`
	HomeScore  *int32     `json:"home_score,omitempty"`
	AwayScore  *int32     `json:"away_score,omitempty"`
	Status     string     `json:"status"`
}

type gameResponse struct {
	ID         uuid.UUID  `json:"id"`
	SeasonID   uuid.UUID  `json:"season_id"`
	StageID    *uuid.UUID `json:"stage_id,omitempty"`
	Date       time.Time  `json:"date"`
	HomeTeamID uuid.UUID  `json:"home_team_id"`
	AwayTeamID uuid.UUID  `json:"away_team_id"`
	HomeScore  *int32     `json:"home_score,omitempty"`
	AwayScore  *int32     `json:"away_score,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  zero.Time  `json:"deleted_at"`
}

func toGameResponse(g dbgen.Game) gameResponse {
	return gameResponse{
		ID:         g.ID,
		SeasonID:   g.SeasonID,
		StageID:    apiutil.FromNullUUID(g.StageID),
		Date:       g.Date,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  apiutil.FromNullInt64(g.HomeScore),
		AwayScore:  apiutil.FromNullInt64(g.AwayScore),
		Status:     g.Status,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
		DeletedAt:  zero.TimeFrom(g.DeletedAt.Time),
	}
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queries = database.Queries
}

// GET /competitions/{id}/seasons/{season_id}/games
func HandleGamesPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	season, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID)
	if !ok {
		return
	}

	games, err := q.ListGamesBySeason(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list games", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list season teams", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list season stages", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	crumbs := nav.BuildBreadcrumbs(
		r.Context(),
		nav.Params{CompetitionID: competitionID.String(), SeasonID: seasonID.String()},
		"/competitions/{id}/seasons/{season_id}/games",
		nav.CompetitionResolver(),
	)
	page := layouts.Base(layouts.Stack(nav.BreadcrumbsComponent(crumbs), gamesPageComponent(competitionID, season, games, teams, stages)), "Games")
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render games page", "Failed to render page") {
		return
	}
}

// GET /v1/competitions/{id}/seasons/{season_id}/games
func HandleGamesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	if _, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID); !ok {
		return
	}

	games, err := q.ListGamesBySeason(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list games", err)
		http.Error(w, "Failed to list games", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		teams, err := q.ListSeasonTeams(ctx, seasonID)
		if err != nil {
			notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list season teams", err)
			http.Error(w, "Failed to list games", http.StatusInternalServerError)
			return
		}
		component := gamesListComponent(competitionID, seasonID, games, teams)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render games list", "Failed to render list") {
			return
		}
		return
	}

	responses := make([]gameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, toGameResponse(game))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, responses); err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to write games response", err)
	}
}

// POST /v1/competitions/{id}/seasons/{season_id}/games
func HandleGameCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	req, err := decodeGameRequest(r)
	if err != nil {
		if htmx.IsRequest(r) {
			writeFormErrorToast(w, r, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	season, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID)
	if !ok {
		return
	}

	candidate, ok := validateGameRequest(ctx, w, logger, q, req, season)
	if !ok {
		return
	}

	if !validateStageMembership(ctx, w, logger, q, seasonID, req.StageID) {
		return
	}

	now := time.Now()
	game, err := q.CreateGame(ctx, dbgen.CreateGameParams{
		ID:         uuid.New(),
		SeasonID:   seasonID,
		StageID:    apiutil.ToNullUUID(req.StageID),
		Date:       candidate.Date,
		HomeTeamID: candidate.HomeTeamID,
		AwayTeamID: candidate.AwayTeamID,
		HomeScore:  apiutil.ToNullInt64(candidate.HomeScore),
		AwayScore:  apiutil.ToNullInt64(candidate.AwayScore),
		Status:     candidate.Status.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if apiutil.IsSQLiteForeignKeyViolation(err) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to create game", err)
		http.Error(w, "Failed to create game", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshGamesList",
		}
		component := gameDetailComponent(competitionID, game)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render game detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, toGameResponse(game)); err != nil {
		notifications.LogError(logger.Error().Str("game_id", game.ID.String()), "Failed to write game response", err)
	}
}

// GET /v1/competitions/{id}/seasons/{season_id}/games/{game_id}
func HandleGameDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	gameID, err := apiutil.UUIDFromPath(r, gameIDPathKey)
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	if _, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID); !ok {
		return
	}

	game, ok := fetchGame(ctx, w, logger, q, seasonID, gameID)
	if !ok {
		return
	}

	if htmx.IsRequest(r) {
		component := gameDetailComponent(competitionID, game)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render game detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toGameResponse(game)); err != nil {
		notifications.LogError(logger.Error().Str("game_id", gameID.String()), "Failed to write game response", err)
	}
}

// PUT /v1/competitions/{id}/seasons/{season_id}/games/{game_id}
func HandleGameUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	gameID, err := apiutil.UUIDFromPath(r, gameIDPathKey)
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	req, err := decodeGameRequest(r)
	if err != nil {
		if htmx.IsRequest(r) {
			writeFormErrorToast(w, r, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	season, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID)
	if !ok {
		return
	}

	if _, ok := fetchGame(ctx, w, logger, q, seasonID, gameID); !ok {
		return
	}

	candidate, ok := validateGameRequest(ctx, w, logger, q, req, season)
	if !ok {
		return
	}

	if !validateStageMembership(ctx, w, logger, q, seasonID, req.StageID) {
		return
	}

	updated, err := q.UpdateGame(ctx, dbgen.UpdateGameParams{
		StageID:    apiutil.ToNullUUID(req.StageID),
		Date:       candidate.Date,
		HomeTeamID: candidate.HomeTeamID,
		AwayTeamID: candidate.AwayTeamID,
		HomeScore:  apiutil.ToNullInt64(candidate.HomeScore),
		AwayScore:  apiutil.ToNullInt64(candidate.AwayScore),
		Status:     candidate.Status.String(),
		UpdatedAt:  time.Now(),
		ID:         gameID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("game_id", gameID.String()), "Failed to update game", err)
		http.Error(w, "Failed to update game", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshGamesList",
		}
		component := gameDetailComponent(competitionID, updated)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render game detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toGameResponse(updated)); err != nil {
		notifications.LogError(logger.Error().Str("game_id", gameID.String()), "Failed to write game response", err)
	}
}

// DELETE /v1/competitions/{id}/seasons/{season_id}/games/{game_id}
func HandleGameDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, seasonID, ok := gamePathIDs(w, r)
	if !ok {
		return
	}

	gameID, err := apiutil.UUIDFromPath(r, gameIDPathKey)
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), gameQueryTimeout)
	defer cancel()

	if _, ok := fetchSeason(ctx, w, logger, q, competitionID, seasonID); !ok {
		return
	}

	if _, ok := fetchGame(ctx, w, logger, q, seasonID, gameID); !ok {
		return
	}

	now := time.Now()
	affected, err := q.DeleteGame(ctx, dbgen.DeleteGameParams{
		DeletedAt: now,
		UpdatedAt: now,
		ID:        gameID,
	})
	if err != nil {
		notifications.LogError(logger.Error().Str("game_id", gameID.String()), "Failed to delete game", err)
		http.Error(w, "Failed to delete game", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshGamesList",
		}
		component := notifications.ToastComponent("Game deleted", notifications.SuccessToastMillis)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render delete response", "Failed to render response") {
			return
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeGameRequest(r *http.Request) (gameRequest, error) {
	var req gameRequest

	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return gameRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return gameRequest{}, errors.New("invalid form data")
	}

	if raw := r.FormValue("stage_id"); raw != "" {
		stageID, err := apiutil.ParseUUIDField(raw, "stage_id")
		if err != nil {
			return gameRequest{}, err
		}
		req.StageID = &stageID
	}
	if raw := r.FormValue("date"); raw != "" {
		date, err := apiutil.ParseDateField(raw, "date")
		if err != nil {
			return gameRequest{}, err
		}
		req.Date = date
	}
	if raw := r.FormValue("kickoff"); raw != "" && !req.Date.IsZero() {
		combined, err := rules.CombineClock(req.Date, raw)
		if err != nil {
			return gameRequest{}, errors.New("kickoff must be a valid time of day")
		}
		req.Date = combined
	}
	if raw := r.FormValue("home_team_id"); raw != "" {
		id, err := apiutil.ParseUUIDField(raw, "home_team_id")
		if err != nil {
			return gameRequest{}, err
		}
		req.HomeTeamID = id
	}
	if raw := r.FormValue("away_team_id"); raw != "" {
		id, err := apiutil.ParseUUIDField(raw, "away_team_id")
		if err != nil {
			return gameRequest{}, err
		}
		req.AwayTeamID = id
	}
	if raw := r.FormValue("home_score"); raw != "" {
		score, err := apiutil.ParseNonNegativeInt32Field(raw, "home_score")
		if err != nil {
			return gameRequest{}, err
		}
		req.HomeScore = &score
	}
	if raw := r.FormValue("away_score"); raw != "" {
		score, err := apiutil.ParseNonNegativeInt32Field(raw, "away_score")
		if err != nil {
			return gameRequest{}, err
		}
		req.AwayScore = &score
	}
	req.Status = apiutil.FirstNonEmpty(r.FormValue("status"), rules.GameStatusScheduled.String())

	return req, nil
}

// validateGameRequest runs the candidate through the rules core against the
// season window and roster. Scores on scheduled/cancelled submissions are
// cleared before validation, so they can never reach storage.
func validateGameRequest(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, req gameRequest, season dbgen.Season) (rules.GameCandidate, bool) {
	roster, err := q.ListSeasonTeams(ctx, season.ID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", season.ID.String()), "Failed to list season teams", err)
		http.Error(w, "Failed to validate game", http.StatusInternalServerError)
		return rules.GameCandidate{}, false
	}

	rosterIDs := make([]uuid.UUID, 0, len(roster))
	for _, team := range roster {
		rosterIDs = append(rosterIDs, team.ID)
	}

	candidate := rules.GameCandidate{
		Date:       req.Date,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Status:     rules.GameStatus(req.Status),
	}.Normalized()

	window := rules.SeasonWindow{
		Start:  season.StartDate,
		End:    season.EndDate,
		Roster: rosterIDs,
	}

	if result := rules.ValidateGame(candidate, window); !result.Valid() {
		if err := apiutil.WriteValidation(w, result); err != nil {
			notifications.LogError(logger.Error(), "Failed to write validation response", err)
		}
		return rules.GameCandidate{}, false
	}

	return candidate, true
}

func validateStageMembership(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, seasonID uuid.UUID, stageID *uuid.UUID) bool {
	if stageID == nil {
		return true
	}

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to list season stages", err)
		http.Error(w, "Failed to validate game", http.StatusInternalServerError)
		return false
	}
	for _, stage := range stages {
		if stage.ID == *stageID {
			return true
		}
	}

	http.Error(w, "Stage not found", http.StatusNotFound)
	return false
}

func fetchSeason(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, competitionID, seasonID uuid.UUID) (dbgen.Season, bool) {
	season, err := q.GetSeason(ctx, seasonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return dbgen.Season{}, false
		}
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to fetch season", err)
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return dbgen.Season{}, false
	}
	if season.CompetitionID != competitionID {
		http.Error(w, "Season not found", http.StatusNotFound)
		return dbgen.Season{}, false
	}
	return season, true
}

func fetchGame(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, seasonID, gameID uuid.UUID) (dbgen.Game, bool) {
	game, err := q.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return dbgen.Game{}, false
		}
		notifications.LogError(logger.Error().Str("game_id", gameID.String()), "Failed to fetch game", err)
		http.Error(w, "Failed to fetch game", http.StatusInternalServerError)
		return dbgen.Game{}, false
	}
	if game.SeasonID != seasonID {
		http.Error(w, "Game not found", http.StatusNotFound)
		return dbgen.Game{}, false
	}
	return game, true
}

// writeFormErrorToast surfaces a bad form submission as an error toast. The
// form targets the games list, so the response is retargeted at the toast
// container instead of clobbering it.
func writeFormErrorToast(w http.ResponseWriter, r *http.Request, err error) {
	headers := map[string]string{
		"HX-Retarget": "#toast-container",
		"HX-Reswap":   "beforeend",
	}
	component := notifications.ErrorToastComponent(err.Error())
	apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render error toast", "Failed to render response")
}

func gamePathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
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
