package rules

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusPlaying   GameStatus = "playing"
	GameStatusFinished  GameStatus = "finished"
	GameStatusCancelled GameStatus = "cancelled"
)

func (gs GameStatus) String() string {
	return string(gs)
}

// ScoresRequired reports whether games in this status must carry both scores.
func (gs GameStatus) ScoresRequired() bool {
	return gs == GameStatusPlaying || gs == GameStatusFinished
}

func validGameStatus(fl validator.FieldLevel) bool {
	switch GameStatus(fl.Field().String()) {
	case GameStatusScheduled, GameStatusPlaying, GameStatusFinished, GameStatusCancelled:
		return true
	default:
		return false
	}
}

// GameCandidate is a proposed game as assembled from a form or JSON request.
type GameCandidate struct {
	Date       time.Time  `json:"date" validate:"required"`
	HomeTeamID uuid.UUID  `json:"home_team_id" validate:"required"`
	AwayTeamID uuid.UUID  `json:"away_team_id" validate:"required"`
	HomeScore  *int32     `json:"home_score" validate:"omitempty,min=0"`
	AwayScore  *int32     `json:"away_score" validate:"omitempty,min=0"`
	Status     GameStatus `json:"status" validate:"required,game_status"`
}

// SeasonWindow is the slice of a season a game is validated against: its
// scheduling window and the roster of eligible teams. A zero window or empty
// roster disables the corresponding check, for callers that have not loaded
// the season yet.
type SeasonWindow struct {
	Start  time.Time
	End    time.Time
	Roster []uuid.UUID
}

func (w SeasonWindow) hasBounds() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

func (w SeasonWindow) contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w SeasonWindow) hasTeam(id uuid.UUID) bool {
	for _, teamID := range w.Roster {
		if teamID == id {
			return true
		}
	}
	return false
}

// Normalized returns a copy of the candidate with scores cleared when the
// status does not allow them. Scheduled and cancelled games never carry
// scores, regardless of what the form held when the status changed.
func (c GameCandidate) Normalized() GameCandidate {
	if !c.Status.ScoresRequired() {
		c.HomeScore = nil
		c.AwayScore = nil
	}
	return c
}

// ValidateGame checks a candidate game for internal consistency and
// consistency with its parent season. The result carries field-level tags for
// missing or malformed values and object-level tags for cross-field failures.
func ValidateGame(candidate GameCandidate, season SeasonWindow) Result {
	var result Result

	collectFieldErrors(&result, candidate)

	if candidate.HomeTeamID != uuid.Nil && candidate.AwayTeamID != uuid.Nil &&
		candidate.HomeTeamID == candidate.AwayTeamID {
		result.addObject(TagTeamsMustDiffer)
	}

	// Window check is boundary-inclusive and skipped while the season is
	// unknown.
	if !candidate.Date.IsZero() && season.hasBounds() && !season.contains(candidate.Date) {
		result.addObject(TagOutOfSeason)
	}

	if len(season.Roster) > 0 {
		if candidate.HomeTeamID != uuid.Nil && !season.hasTeam(candidate.HomeTeamID) {
			result.addField("home_team_id", TagNotInSeason)
		}
		if candidate.AwayTeamID != uuid.Nil && !season.hasTeam(candidate.AwayTeamID) {
			result.addField("away_team_id", TagNotInSeason)
		}
	}

	if candidate.Status.ScoresRequired() {
		if candidate.HomeScore == nil {
			result.addField("home_score", "required")
		}
		if candidate.AwayScore == nil {
			result.addField("away_score", "required")
		}
	}

	return result
}
