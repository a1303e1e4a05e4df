// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

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
	teamQueryTimeout      = 5 * time.Second
	teamIDPathKey         = "id"
	nameMinLength         = 3
	nameMaxLength         = 100
	abbreviationMinLength = 2
	abbreviationMaxLength = 4
	locationMinLength     = 2
	locationMaxLength     = 100
)

var (
	queries *dbgen.Queries
)

type teamRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
}

type teamInput struct {
	Name         string
	Abbreviation string
	Location     string
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

func toTeamResponse(t dbgen.Team) teamResponse {
	return teamResponse{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Location:     t.Location,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		DeletedAt:    zero.TimeFrom(t.DeletedAt.Time),
	}
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queries = database.Queries
}

// GET /teams
func HandleTeamsPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := q.ListTeams(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list teams", err)
		http.Error(w, "Failed to load teams", http.StatusInternalServerError)
		return
	}

	crumbs := []nav.Crumb{
		{Label: "Admin", URL: "/"},
		{Label: "Teams", URL: "/teams"},
	}
	page := layouts.Base(layouts.Stack(nav.BreadcrumbsComponent(crumbs), teamsPageComponent(teams)), "Teams")
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render teams page", "Failed to render page") {
		return
	}
}

// GET /v1/teams
func HandleTeamsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := q.ListTeams(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list teams", err)
		http.Error(w, "Failed to list teams", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := teamsListComponent(teams)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render teams list", "Failed to render list") {
			return
		}
		return
	}

	responses := make([]teamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, toTeamResponse(team))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, responses); err != nil {
		notifications.LogError(logger.Error(), "Failed to write teams response", err)
	}
}

// POST /v1/teams
func HandleTeamCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	req, err := decodeTeamRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := parseTeamRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	now := time.Now()
	team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{
		ID:           uuid.New(),
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
		Location:     input.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to create team", err)
		http.Error(w, "Failed to create team", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshTeamsList",
		}
		component := teamDetailComponent(team)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render team detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, toTeamResponse(team)); err != nil {
		notifications.LogError(logger.Error().Str("team_id", team.ID.String()), "Failed to write team response", err)
	}
}

// GET /v1/teams/{id}
func HandleTeamDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.UUIDFromPath(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("team_id", teamID.String()), "Failed to fetch team", err)
		http.Error(w, "Failed to fetch team", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		component := teamDetailComponent(team)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render team detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toTeamResponse(team)); err != nil {
		notifications.LogError(logger.Error().Str("team_id", teamID.String()), "Failed to write team response", err)
	}
}

// PUT /v1/teams/{id}
func HandleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.UUIDFromPath(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	req, err := decodeTeamRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := parseTeamRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	updated, err := q.UpdateTeam(ctx, dbgen.UpdateTeamParams{
		ID:           teamID,
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
		Location:     input.Location,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		notifications.LogError(logger.Error().Str("team_id", teamID.String()), "Failed to update team", err)
		http.Error(w, "Failed to update team", http.StatusInternalServerError)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshTeamsList",
		}
		component := teamDetailComponent(updated)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render team detail", "Failed to render response") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, toTeamResponse(updated)); err != nil {
		notifications.LogError(logger.Error().Str("team_id", teamID.String()), "Failed to write team response", err)
	}
}

// DELETE /v1/teams/{id}
func HandleTeamDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.UUIDFromPath(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	now := time.Now()
	affected, err := q.DeleteTeam(ctx, dbgen.DeleteTeamParams{
		DeletedAt: now,
		UpdatedAt: now,
		ID:        teamID,
	})
	if err != nil {
		notifications.LogError(logger.Error().Str("team_id", teamID.String()), "Failed to delete team", err)
		http.Error(w, "Failed to delete team", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Team not found", http.StatusNotFound)
		return
	}

	if htmx.IsRequest(r) {
		headers := map[string]string{
			"HX-Trigger": "refreshTeamsList",
		}
		component := notifications.ToastComponent("Team deleted", notifications.SuccessToastMillis)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, headers, "Failed to render delete response", "Failed to render response") {
			return
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeTeamRequest(r *http.Request) (teamRequest, error) {
	if apiutil.IsJSONRequest(r) {
		var req teamRequest
		return req, apiutil.DecodeJSON(r, &req)
	}

	if err := r.ParseForm(); err != nil {
		return teamRequest{}, err
	}

	return teamRequest{
		Name:         apiutil.FirstNonEmpty(r.FormValue("name")),
		Abbreviation: apiutil.FirstNonEmpty(r.FormValue("abbreviation")),
		Location:     apiutil.FirstNonEmpty(r.FormValue("location")),
	}, nil
}

func parseTeamRequest(req teamRequest) (teamInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return teamInput{}, fmt.Errorf("name is required")
	}
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return teamInput{}, fmt.Errorf("name must be between %d and %d characters", nameMinLength, nameMaxLength)
	}

	abbreviation := strings.ToUpper(strings.TrimSpace(req.Abbreviation))
	if abbreviation == "" {
		return teamInput{}, fmt.Errorf("abbreviation is required")
	}
	if len(abbreviation) < abbreviationMinLength || len(abbreviation) > abbreviationMaxLength {
		return teamInput{}, fmt.Errorf("abbreviation must be between %d and %d characters", abbreviationMinLength, abbreviationMaxLength)
	}
	for _, r := range abbreviation {
		if !unicode.IsLetter(r) {
			return teamInput{}, fmt.Errorf("abbreviation must contain only letters")
		}
	}

	location := strings.TrimSpace(req.Location)
	if location != "" && (len(location) < locationMinLength || len(location) > locationMaxLength) {
		return teamInput{}, fmt.Errorf("location must be between %d and %d characters", locationMinLength, locationMaxLength)
	}

	return teamInput{
		Name:         name,
		Abbreviation: abbreviation,
		Location:     location,
	}, nil
}

func loadQueries() *dbgen.Queries {
	return queries
}
