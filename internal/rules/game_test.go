package rules

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func testWindow() (SeasonWindow, uuid.UUID, uuid.UUID) {
	home := uuid.New()
	away := uuid.New()
	window := SeasonWindow{
		Start:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 9, 30, 23, 59, 0, 0, time.UTC),
		Roster: []uuid.UUID{home, away},
	}
	return window, home, away
}

func validCandidate(home, away uuid.UUID) GameCandidate {
	return GameCandidate{
		Date:       time.Date(2025, 6, 14, 19, 30, 0, 0, time.UTC),
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     GameStatusScheduled,
	}
}

func TestValidateGameValid(t *testing.T) {
	window, home, away := testWindow()

	result := ValidateGame(validCandidate(home, away), window)
	if !result.Valid() {
		t.Fatalf("expected valid game, got %+v", result)
	}
}

func TestValidateGameRequiredFields(t *testing.T) {
	result := ValidateGame(GameCandidate{}, SeasonWindow{})
	if result.Valid() {
		t.Fatal("expected invalid game")
	}

	for _, field := range []string{"date", "home_team_id", "away_team_id", "status"} {
		if !result.FieldHas(field, "required") {
			t.Errorf("expected required error on %s, got %+v", field, result.Fields)
		}
	}
}

func TestValidateGameTeamsMustDiffer(t *testing.T) {
	window, home, _ := testWindow()

	candidate := validCandidate(home, home)
	result := ValidateGame(candidate, window)
	if !result.ObjectHas(TagTeamsMustDiffer) {
		t.Fatalf("expected %s tag, got %+v", TagTeamsMustDiffer, result)
	}

	window2, home2, away2 := testWindow()
	if result := ValidateGame(validCandidate(home2, away2), window2); result.ObjectHas(TagTeamsMustDiffer) {
		t.Fatalf("distinct teams should not trip %s", TagTeamsMustDiffer)
	}
}

func TestValidateGameWindow(t *testing.T) {
	window, home, away := testWindow()

	cases := []struct {
		name     string
		date     time.Time
		inSeason bool
	}{
		{"before start", window.Start.Add(-time.Minute), false},
		{"at start", window.Start, true},
		{"mid season", window.Start.AddDate(0, 2, 0), true},
		{"at end", window.End, true},
		{"after end", window.End.Add(time.Minute), false},
	}

	for _, tc := range cases {
		candidate := validCandidate(home, away)
		candidate.Date = tc.date
		result := ValidateGame(candidate, window)
		if tagged := result.ObjectHas(TagOutOfSeason); tagged == tc.inSeason {
			t.Errorf("%s: outOfSeason=%v, want %v", tc.name, tagged, !tc.inSeason)
		}
	}
}

func TestValidateGameWindowSkippedWhenUnknown(t *testing.T) {
	_, home, away := testWindow()

	candidate := validCandidate(home, away)
	result := ValidateGame(candidate, SeasonWindow{})
	if result.ObjectHas(TagOutOfSeason) {
		t.Fatal("window check should be skipped without season bounds")
	}
}

func TestValidateGameScoreRequirements(t *testing.T) {
	window, home, away := testWindow()
	score := int32(3)

	for _, status := range []GameStatus{GameStatusPlaying, GameStatusFinished} {
		candidate := validCandidate(home, away)
		candidate.Status = status
		result := ValidateGame(candidate, window)
		if !result.FieldHas("home_score", "required") || !result.FieldHas("away_score", "required") {
			t.Errorf("%s: expected required scores, got %+v", status, result.Fields)
		}

		candidate.HomeScore = &score
		candidate.AwayScore = &score
		if result := ValidateGame(candidate, window); !result.Valid() {
			t.Errorf("%s with scores: expected valid, got %+v", status, result)
		}
	}
}

func TestValidateGameNegativeScore(t *testing.T) {
	window, home, away := testWindow()
	bad := int32(-1)
	good := int32(2)

	candidate := validCandidate(home, away)
	candidate.Status = GameStatusFinished
	candidate.HomeScore = &bad
	candidate.AwayScore = &good

	result := ValidateGame(candidate, window)
	if !result.FieldHas("home_score", "min") {
		t.Fatalf("expected min error on home_score, got %+v", result.Fields)
	}
}

func TestValidateGameRoster(t *testing.T) {
	window, home, _ := testWindow()
	outsider := uuid.New()

	candidate := validCandidate(home, outsider)
	result := ValidateGame(candidate, window)
	if !result.FieldHas("away_team_id", TagNotInSeason) {
		t.Fatalf("expected %s on away_team_id, got %+v", TagNotInSeason, result.Fields)
	}
}

func TestNormalizedClearsScores(t *testing.T) {
	_, home, away := testWindow()
	seven := int32(7)
	three := int32(3)

	candidate := validCandidate(home, away)
	candidate.HomeScore = &seven
	candidate.AwayScore = &three

	normalized := candidate.Normalized()
	if normalized.HomeScore != nil || normalized.AwayScore != nil {
		t.Fatalf("scheduled game should have scores cleared, got %+v", normalized)
	}

	candidate.Status = GameStatusFinished
	normalized = candidate.Normalized()
	if normalized.HomeScore == nil || normalized.AwayScore == nil {
		t.Fatal("finished game should keep its scores")
	}
}
