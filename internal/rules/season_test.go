package rules

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func rosterOf(n int) []uuid.UUID {
	teams := make([]uuid.UUID, n)
	for i := range teams {
		teams[i] = uuid.New()
	}
	return teams
}

func validSeason() SeasonCandidate {
	return SeasonCandidate{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		Teams: rosterOf(4),
		Stages: []StageCandidate{
			{Name: "Round Robin", StageType: StageTypeRegular},
			{Name: "Final", StageType: StageTypeFinals},
		},
	}
}

func TestValidateSeasonValid(t *testing.T) {
	if result := ValidateSeason(validSeason()); !result.Valid() {
		t.Fatalf("expected valid season, got %+v", result)
	}
}

func TestValidateSeasonEndBeforeStart(t *testing.T) {
	candidate := validSeason()
	candidate.End = candidate.Start
	if result := ValidateSeason(candidate); !result.ObjectHas(TagEndBeforeStart) {
		t.Fatalf("equal start and end should trip %s", TagEndBeforeStart)
	}

	candidate.End = candidate.Start.Add(-time.Hour)
	if result := ValidateSeason(candidate); !result.ObjectHas(TagEndBeforeStart) {
		t.Fatalf("earlier end should trip %s", TagEndBeforeStart)
	}

	candidate.End = candidate.Start.Add(time.Minute)
	if result := ValidateSeason(candidate); result.ObjectHas(TagEndBeforeStart) {
		t.Fatal("later end should be accepted")
	}
}

func TestValidateSeasonRosterBounds(t *testing.T) {
	cases := []struct {
		size int
		tag  string
	}{
		{1, TagMinArray},
		{2, ""},
		{20, ""},
		{21, TagMaxArray},
	}

	for _, tc := range cases {
		candidate := validSeason()
		candidate.Teams = rosterOf(tc.size)
		result := ValidateSeason(candidate)
		switch {
		case tc.tag == "" && (result.FieldHas("teams", TagMinArray) || result.FieldHas("teams", TagMaxArray)):
			t.Errorf("roster size %d: unexpected error %+v", tc.size, result.Fields)
		case tc.tag != "" && !result.FieldHas("teams", tc.tag):
			t.Errorf("roster size %d: expected %s, got %+v", tc.size, tc.tag, result.Fields)
		}
	}
}

func TestValidateSeasonEmptyRosterIsRequired(t *testing.T) {
	candidate := validSeason()
	candidate.Teams = nil
	result := ValidateSeason(candidate)
	if !result.FieldHas("teams", "required") {
		t.Fatalf("expected required error on teams, got %+v", result.Fields)
	}
}

func TestValidateSeasonStages(t *testing.T) {
	candidate := validSeason()
	candidate.Stages = nil
	if result := ValidateSeason(candidate); result.Valid() {
		t.Fatal("season without stages should be invalid")
	}

	candidate = validSeason()
	candidate.Stages[0].Name = ""
	result := ValidateSeason(candidate)
	if !result.FieldHas("stages[0].name", "required") {
		t.Fatalf("expected required error on stage name, got %+v", result.Fields)
	}

	candidate = validSeason()
	candidate.Stages[1].StageType = "semifinal"
	result = ValidateSeason(candidate)
	if !result.FieldHas("stages[1].stage_type", "stage_type") {
		t.Fatalf("expected stage_type error, got %+v", result.Fields)
	}
}

func TestMoveStage(t *testing.T) {
	stages := func() []StageCandidate {
		return NormalizeOrder([]StageCandidate{
			{Name: "A", StageType: StageTypeRegular},
			{Name: "B", StageType: StageTypeRegular},
			{Name: "C", StageType: StageTypeFinals},
		})
	}

	moved := MoveStageUp(stages(), 1)
	if moved[0].Name != "B" || moved[1].Name != "A" {
		t.Fatalf("unexpected order after move up: %+v", moved)
	}
	for i, stage := range moved {
		if stage.OrderIndex != int32(i+1) {
			t.Fatalf("order_index not contiguous after move: %+v", moved)
		}
	}

	moved = MoveStageDown(stages(), 1)
	if moved[1].Name != "C" || moved[2].Name != "B" {
		t.Fatalf("unexpected order after move down: %+v", moved)
	}

	// Boundary moves are no-ops.
	top := MoveStageUp(stages(), 0)
	if top[0].Name != "A" {
		t.Fatalf("move up at top should be a no-op, got %+v", top)
	}
	bottom := MoveStageDown(stages(), 2)
	if bottom[2].Name != "C" {
		t.Fatalf("move down at bottom should be a no-op, got %+v", bottom)
	}
}
