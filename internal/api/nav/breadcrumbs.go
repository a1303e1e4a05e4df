// internal/api/nav/breadcrumbs.go
package nav

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Crumb is one entry of a navigation trail. URL is the full ancestor path up
// to and including the entry, so every crumb is directly navigable.
type Crumb struct {
	Label string
	URL   string
}

// Params holds the hierarchical identifiers extracted from the current route.
// Empty fields mean the route does not reach that depth.
type Params struct {
	CompetitionID string
	SeasonID      string
	GameID        string
}

// NameResolver looks up a display name for a competition. Resolution failures
// fall back to showing the raw identifier.
type NameResolver func(ctx context.Context, id uuid.UUID) (string, error)

// BuildBreadcrumbs derives the trail for the admin hierarchy from route
// params and the route's path template. The template distinguishes list and
// create pages from item pages at the same depth: a seasons-list route gets a
// Seasons crumb even though no season id is present yet.
func BuildBreadcrumbs(ctx context.Context, params Params, routePath string, resolver NameResolver) []Crumb {
	crumbs := []Crumb{
		{Label: "Admin", URL: "/"},
		{Label: "Competitions", URL: "/competitions"},
	}

	if params.CompetitionID == "" {
		return crumbs
	}

	competitionURL := "/competitions/" + params.CompetitionID
	crumbs = append(crumbs, Crumb{
		Label: resolveLabel(ctx, resolver, params.CompetitionID),
		URL:   competitionURL,
	})

	onSeasonsRoute := strings.Contains(routePath, "/seasons")
	if !onSeasonsRoute && params.SeasonID == "" {
		return crumbs
	}

	seasonsURL := competitionURL + "/seasons"
	crumbs = append(crumbs, Crumb{Label: "Seasons", URL: seasonsURL})

	if params.SeasonID == "" {
		return crumbs
	}

	seasonURL := seasonsURL + "/" + params.SeasonID
	crumbs = append(crumbs, Crumb{Label: params.SeasonID, URL: seasonURL})

	onGamesRoute := strings.Contains(routePath, "/games")
	if !onGamesRoute && params.GameID == "" {
		return crumbs
	}

	gamesURL := seasonURL + "/games"
	crumbs = append(crumbs, Crumb{Label: "Games", URL: gamesURL})

	if params.GameID == "" {
		return crumbs
	}

	crumbs = append(crumbs, Crumb{Label: params.GameID, URL: gamesURL + "/" + params.GameID})
	return crumbs
}

func resolveLabel(ctx context.Context, resolver NameResolver, rawID string) string {
	if resolver == nil {
		return rawID
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return rawID
	}
	name, err := resolver(ctx, id)
	if err != nil || name == "" {
		return rawID
	}
	return name
}
