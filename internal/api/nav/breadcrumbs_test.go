// internal/api/nav/breadcrumbs_test.go
package nav

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func labels(crumbs []Crumb) []string {
	out := make([]string, 0, len(crumbs))
	for _, crumb := range crumbs {
		out = append(out, crumb.Label)
	}
	return out
}

func TestBuildBreadcrumbsGameItemRoute(t *testing.T) {
	params := Params{
		CompetitionID: "comp1",
		SeasonID:      "season1",
		GameID:        "game1",
	}
	crumbs := BuildBreadcrumbs(context.Background(), params, "/competitions/{id}/seasons/{season_id}/games/{game_id}", nil)

	want := []string{"Admin", "Competitions", "comp1", "Seasons", "season1", "Games", "game1"}
	got := labels(crumbs)
	if len(got) != len(want) {
		t.Fatalf("expected %d crumbs, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("crumb %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Every crumb's URL is a strict prefix of its successor's.
	for i := 1; i < len(crumbs); i++ {
		prev, cur := crumbs[i-1].URL, crumbs[i].URL
		if !strings.HasPrefix(cur, prev) || cur == prev {
			t.Errorf("crumb %d URL %q is not extended by %q", i-1, prev, cur)
		}
	}
	if last := crumbs[len(crumbs)-1].URL; last != "/competitions/comp1/seasons/season1/games/game1" {
		t.Errorf("unexpected final URL %q", last)
	}
}

func TestBuildBreadcrumbsCompetitionsList(t *testing.T) {
	crumbs := BuildBreadcrumbs(context.Background(), Params{}, "/competitions", nil)
	got := labels(crumbs)
	if len(got) != 2 || got[0] != "Admin" || got[1] != "Competitions" {
		t.Fatalf("expected [Admin Competitions], got %v", got)
	}
}

func TestBuildBreadcrumbsSeasonsListHasSeasonsCrumb(t *testing.T) {
	params := Params{CompetitionID: "comp1"}
	crumbs := BuildBreadcrumbs(context.Background(), params, "/competitions/{id}/seasons", nil)

	got := labels(crumbs)
	want := []string{"Admin", "Competitions", "comp1", "Seasons"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if crumbs[3].URL != "/competitions/comp1/seasons" {
		t.Errorf("unexpected Seasons URL %q", crumbs[3].URL)
	}
}

func TestBuildBreadcrumbsCompetitionItemStopsAtCompetition(t *testing.T) {
	params := Params{CompetitionID: "comp1"}
	crumbs := BuildBreadcrumbs(context.Background(), params, "/competitions/{id}", nil)

	if got := labels(crumbs); len(got) != 3 || got[2] != "comp1" {
		t.Fatalf("expected trail ending at comp1, got %v", got)
	}
}

func TestBuildBreadcrumbsResolvedName(t *testing.T) {
	id := uuid.New()
	resolver := func(ctx context.Context, got uuid.UUID) (string, error) {
		if got != id {
			t.Errorf("resolver called with %s, expected %s", got, id)
		}
		return "Premier League", nil
	}

	crumbs := BuildBreadcrumbs(context.Background(), Params{CompetitionID: id.String()}, "/competitions/{id}", resolver)
	if crumbs[2].Label != "Premier League" {
		t.Errorf("expected resolved name, got %q", crumbs[2].Label)
	}
	if crumbs[2].URL != "/competitions/"+id.String() {
		t.Errorf("resolved crumb must keep the id URL, got %q", crumbs[2].URL)
	}
}

func TestBuildBreadcrumbsResolverFailureFallsBack(t *testing.T) {
	id := uuid.New()
	resolver := func(ctx context.Context, got uuid.UUID) (string, error) {
		return "", errors.New("lookup failed")
	}

	crumbs := BuildBreadcrumbs(context.Background(), Params{CompetitionID: id.String()}, "/competitions/{id}", resolver)
	if crumbs[2].Label != id.String() {
		t.Errorf("expected raw id fallback, got %q", crumbs[2].Label)
	}
}

func TestBuildBreadcrumbsNonUUIDSkipsResolver(t *testing.T) {
	called := false
	resolver := func(ctx context.Context, got uuid.UUID) (string, error) {
		called = true
		return "name", nil
	}

	crumbs := BuildBreadcrumbs(context.Background(), Params{CompetitionID: "comp1"}, "/competitions/{id}", resolver)
	if called {
		t.Error("resolver must not be called for a non-uuid param")
	}
	if crumbs[2].Label != "comp1" {
		t.Errorf("expected raw id, got %q", crumbs[2].Label)
	}
}
