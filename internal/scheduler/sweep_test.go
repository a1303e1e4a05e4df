package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/testutil"
)

func seedGame(t *testing.T, q *dbgen.Queries, date time.Time, status string) dbgen.Game {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	competition, err := q.CreateCompetition(ctx, dbgen.CreateCompetitionParams{
		ID:        uuid.New(),
		Name:      "Sweep Cup",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert competition: %v", err)
	}

	season, err := q.CreateSeason(ctx, dbgen.CreateSeasonParams{
		ID:            uuid.New(),
		CompetitionID: competition.ID,
		StartDate:     date.AddDate(0, -1, 0),
		EndDate:       date.AddDate(0, 1, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		t.Fatalf("insert season: %v", err)
	}

	teamIDs := make([]uuid.UUID, 2)
	for i, name := range []string{"Home Side", "Away Side"} {
		team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{
			ID:           uuid.New(),
			Name:         name,
			Abbreviation: "TM" + string(rune('A'+i)),
			Location:     "Testville",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			t.Fatalf("insert team: %v", err)
		}
		teamIDs[i] = team.ID
	}

	game, err := q.CreateGame(ctx, dbgen.CreateGameParams{
		ID:         uuid.New(),
		SeasonID:   season.ID,
		Date:       date,
		HomeTeamID: teamIDs[0],
		AwayTeamID: teamIDs[1],
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("insert game: %v", err)
	}
	return game
}

func TestSweepOverdueGames(t *testing.T) {
	database := testutil.NewTestDB(t)
	past := time.Now().UTC().Add(-48 * time.Hour)
	seedGame(t, database.Queries, past, "scheduled")

	count, err := SweepOverdueGames(context.Background(), database, time.Now().UTC())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 overdue game, got %d", count)
	}
}

func TestSweepIgnoresFinishedAndFutureGames(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedGame(t, database.Queries, time.Now().UTC().Add(-48*time.Hour), "finished")
	seedGame(t, database.Queries, time.Now().UTC().Add(48*time.Hour), "scheduled")

	count, err := SweepOverdueGames(context.Background(), database, time.Now().UTC())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no overdue games, got %d", count)
	}
}

func TestSweepRequiresDatabase(t *testing.T) {
	if _, err := SweepOverdueGames(context.Background(), nil, time.Now()); err == nil {
		t.Fatal("expected error without database")
	}
}
