package rules

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StageType distinguishes regular-season play from finals.
type StageType string

const (
	StageTypeRegular StageType = "regular"
	StageTypeFinals  StageType = "finals"
)

func (st StageType) String() string {
	return string(st)
}

func validStageType(fl validator.FieldLevel) bool {
	switch StageType(fl.Field().String()) {
	case StageTypeRegular, StageTypeFinals:
		return true
	default:
		return false
	}
}

// StageCandidate is one stage row of a season form. A nil ID marks a stage
// that does not exist yet.
type StageCandidate struct {
	ID         *uuid.UUID `json:"id"`
	Name       string     `json:"name" validate:"required"`
	StageType  StageType  `json:"stage_type" validate:"required,stage_type"`
	OrderIndex int32      `json:"order_index"`
}

// SeasonCandidate is a proposed season: its scheduling window, roster, and
// ordered stage list.
type SeasonCandidate struct {
	Start  time.Time        `json:"start_date" validate:"required"`
	End    time.Time        `json:"end_date" validate:"required"`
	Teams  []uuid.UUID      `json:"teams" validate:"required"`
	Stages []StageCandidate `json:"stages" validate:"required,min=1,dive"`
}

// ValidateSeason checks a candidate season. The window must be non-empty with
// a strictly later end, the roster must hold between RosterMin and RosterMax
// teams, and every stage needs a name and a known type.
func ValidateSeason(candidate SeasonCandidate) Result {
	var result Result

	collectFieldErrors(&result, candidate)

	if !candidate.Start.IsZero() && !candidate.End.IsZero() && !candidate.End.After(candidate.Start) {
		result.addObject(TagEndBeforeStart)
	}

	if len(candidate.Teams) > 0 {
		if len(candidate.Teams) < RosterMin {
			result.addField("teams", TagMinArray)
		}
		if len(candidate.Teams) > RosterMax {
			result.addField("teams", TagMaxArray)
		}
	}

	return result
}

// MoveStageUp swaps the stage at index i with its predecessor and renumbers.
// A move at the top of the list is a no-op.
func MoveStageUp(stages []StageCandidate, i int) []StageCandidate {
	if i <= 0 || i >= len(stages) {
		return stages
	}
	stages[i-1], stages[i] = stages[i], stages[i-1]
	return NormalizeOrder(stages)
}

// MoveStageDown swaps the stage at index i with its successor and renumbers.
// A move at the bottom of the list is a no-op.
func MoveStageDown(stages []StageCandidate, i int) []StageCandidate {
	if i < 0 || i >= len(stages)-1 {
		return stages
	}
	stages[i], stages[i+1] = stages[i+1], stages[i]
	return NormalizeOrder(stages)
}

// NormalizeOrder renumbers order_index contiguously starting at 1, in slice
// order.
func NormalizeOrder(stages []StageCandidate) []StageCandidate {
	for i := range stages {
		stages[i].OrderIndex = int32(i + 1)
	}
	return stages
}
