// internal/api/competitions/handlers.go
package competitions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
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
	"github.com/kvesterberg/fixturedesk/internal/templates/layouts"
)

const (
	competitionQueryTimeout = 5 * time.Second
	competitionIDPathKey    = "id"
	nameMinLength           = 3
	nameMaxLength           = 100
)

var (
	queries *dbgen.Queries
)

type competitionRequest struct {
	Name string `json:"name"`
}

type competitionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	DeletedAt zero.Time `json:"deleted_at"`
}

func toCompetitionResponse(c dbgen.Competition) competitionResponse {
	return competitionResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: zero.TimeFrom(c.DeletedAt.Time),
	}
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queries = database.Queries
}

// GET /competitions
func HandleCompetitionsPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	competitions, err := q.ListCompetitions(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list competitions", err)
		http.Error(w, "Failed to load competitions", http.StatusInternalServerError)
		return
	}

	crumbs := nav.BuildBreadcrumbs(r.Context(), nav.Params{}, "/competitions", nav.CompetitionResolver())
	page := layouts.Base(layouts.Stack(nav.BreadcrumbsComponent(crumbs), competitionsPageComponent(competitions)), "Competitions")
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render competitions page", "Failed to render page") {
		return
	}
}

// GET /v1/competitions
func HandleCompetitionsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	competitions, err := q.ListCompetitions(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list competitions", err)
		http.Error(w, "Failed to list competitions", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := competitionsListComponent(competitions)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render competitions list", "Failed to render list") {
			return
		}
		return
	}

	responses := make([]competitionResponse, 0, len(competitions))
	for _, competition := range competitions {
		responses = append(responses, toCompetitionResponse(competition))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, responses); err != nil {
		notifications.LogError(logger.Error(), "Failed to write competitions response", err)
	}
}

// POST /v1/competitions
func HandleCompetitionCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	req, err := decodeCompetitionRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, err := parseCompetitionName(req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	now := time.Now()
	competition, err := q.CreateCompetition(ctx, dbgen.CreateCompetitionParams{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to create competition", err)
		http.Error(w, "Failed to create competition", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshCompetitionsList",
		}
		component := competitionDetailComponent(competition)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render competition detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, toCompetitionResponse(competition)); err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competition.ID.String()), "Failed to write competition response", err)
	}
}

// GET /v1/competitions/{id}
func HandleCompetitionDetail(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
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

	if htmx.IsRequest(r) {
		component := competitionDetailComponent(competition)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render competition detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toCompetitionResponse(competition)); err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to write competition response", err)
	}
}

// PUT /v1/competitions/{id}
func HandleCompetitionUpdate(w http.ResponseWriter, r *http.Request) {
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

	req, err := decodeCompetitionRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, err := parseCompetitionName(req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	updated, err := q.UpdateCompetition(ctx, dbgen.UpdateCompetitionParams{
		ID:        competitionID,
		Name:      name,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Competition not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to update competition", err)
		http.Error(w, "Failed to update competition", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshCompetitionsList",
		}
		component := competitionDetailComponent(updated)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render competition detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toCompetitionResponse(updated)); err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to write competition response", err)
	}
}

// DELETE /v1/competitions/{id}
func HandleCompetitionDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	now := time.Now()
	affected, err := q.DeleteCompetition(ctx, dbgen.DeleteCompetitionParams{
		DeletedAt: now,
		UpdatedAt: now,
		ID:        competitionID,
	})
	if err != nil {
		notifications.LogError(logger.Error().Str("competition_id", competitionID.String()), "Failed to delete competition", err)
		http.Error(w, "Failed to delete competition", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Competition not found", http.StatusNotFound)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshCompetitionsList",
		}
		component := notifications.ToastComponent("Competition deleted", notifications.SuccessToastMillis)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render delete response", "Failed to render response") {
			return
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeCompetitionRequest(r *http.Request) (competitionRequest, error) {
	if apiutil.IsJSONRequest(r) {
		var req competitionRequest
		return req, apiutil.DecodeJSON(r, &req)
	}

	if err := r.ParseForm(); err != nil {
		return competitionRequest{}, err
	}

	return competitionRequest{
		Name: apiutil.FirstNonEmpty(r.FormValue("name")),
	}, nil
}

func parseCompetitionName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return "", fmt.Errorf("name must be between %d and %d characters", nameMinLength, nameMaxLength)
	}
	return name, nil
}

func loadQueries() *dbgen.Queries {
	return queries
}
