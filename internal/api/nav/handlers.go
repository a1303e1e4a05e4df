// internal/api/nav/handlers.go
package nav

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/api/apiutil"
	"github.com/kvesterberg/fixturedesk/internal/api/htmx"
	"github.com/kvesterberg/fixturedesk/internal/api/notifications"
	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
)

const (
	navQueryTimeout = 5 * time.Second
	searchLimit     = 10
)

var queries *dbgen.Queries

func InitHandlers(q *dbgen.Queries) {
	queries = q
}

// CompetitionResolver returns a breadcrumb name resolver backed by the
// competitions table.
func CompetitionResolver() NameResolver {
	return func(ctx context.Context, id uuid.UUID) (string, error) {
		q := queries
		if q == nil {
			return "", nil
		}
		competition, err := q.GetCompetition(ctx, id)
		if err != nil {
			return "", err
		}
		return competition.Name, nil
	}
}

type searchResult struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GET /v1/nav/search?q=...
//
// Fuzzy-matches the query against competition and team names.
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := queries
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	term := r.URL.Query().Get("q")
	if term == "" {
		writeSearchResults(w, r, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), navQueryTimeout)
	defer cancel()

	competitions, err := q.ListCompetitions(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list competitions for search", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}
	teams, err := q.ListTeams(ctx)
	if err != nil {
		notifications.LogError(logger.Error(), "Failed to list teams for search", err)
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}

	candidates := make([]searchResult, 0, len(competitions)+len(teams))
	names := make([]string, 0, len(competitions)+len(teams))
	for _, competition := range competitions {
		candidates = append(candidates, searchResult{
			Kind: "competition",
			ID:   competition.ID.String(),
			Name: competition.Name,
			URL:  "/competitions/" + competition.ID.String() + "/seasons",
		})
		names = append(names, competition.Name)
	}
	for _, team := range teams {
		candidates = append(candidates, searchResult{
			Kind: "team",
			ID:   team.ID.String(),
			Name: team.Name,
			URL:  "/teams",
		})
		names = append(names, team.Name)
	}

	ranks := fuzzy.RankFindNormalizedFold(term, names)
	sort.Sort(ranks)

	results := make([]searchResult, 0, searchLimit)
	for _, rank := range ranks {
		if len(results) == searchLimit {
			break
		}
		results = append(results, candidates[rank.OriginalIndex])
	}

	writeSearchResults(w, r, results)
}

func writeSearchResults(w http.ResponseWriter, r *http.Request, results []searchResult) {
	if htmx.IsRequest(r) {
		component := searchResultsComponent(results)
		apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render search results", "Failed to render search results")
		return
	}

	if results == nil {
		results = []searchResult{}
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, results); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write search results")
	}
}
