// internal/api/seasons/sync.go
package seasons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kvesterberg/fixturedesk/internal/api/notifications"
	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/rules"
)

var (
	errTeamNotFound  = errors.New("team not found")
	errStageNotFound = errors.New("stage not found")
)

func createSeason(ctx context.Context, q *dbgen.Queries, req seasonRequest, competitionID uuid.UUID) (seasonAggregate, error) {
	now := time.Now()
	seasonID := uuid.New()

	if _, err := q.CreateSeason(ctx, dbgen.CreateSeasonParams{
		ID:            seasonID,
		CompetitionID: competitionID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to create season: %w", err)
	}

	teamIDs := dedupeUUIDs(req.Teams)
	if err := ensureTeamsExist(ctx, q, teamIDs); err != nil {
		return seasonAggregate{}, err
	}

	if err := addSeasonTeams(ctx, q, seasonID, teamIDs, now, nil); err != nil {
		return seasonAggregate{}, err
	}

	for _, stage := range req.Stages {
		if err := createStage(ctx, q, seasonID, stage, now); err != nil {
			return seasonAggregate{}, err
		}
	}

	return getSeasonAggregate(ctx, q, seasonID)
}

func updateSeason(ctx context.Context, q *dbgen.Queries, req seasonRequest, seasonID uuid.UUID) (seasonAggregate, error) {
	now := time.Now()

	if _, err := q.UpdateSeason(ctx, dbgen.UpdateSeasonParams{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		UpdatedAt: now,
		ID:        seasonID,
	}); err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to update season: %w", err)
	}

	if err := syncSeasonTeams(ctx, q, seasonID, req.Teams, now); err != nil {
		return seasonAggregate{}, err
	}

	if err := syncSeasonStages(ctx, q, seasonID, req.Stages, now); err != nil {
		return seasonAggregate{}, err
	}

	return getSeasonAggregate(ctx, q, seasonID)
}

// syncSeasonTeams reconciles the roster: missing memberships are added,
// memberships absent from the request are soft deleted.
func syncSeasonTeams(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID, teamIDs []uuid.UUID, now time.Time) error {
	teamIDs = dedupeUUIDs(teamIDs)
	if err := ensureTeamsExist(ctx, q, teamIDs); err != nil {
		return err
	}

	existing, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("unable to list season teams: %w", err)
	}

	existingSet := make(map[uuid.UUID]struct{}, len(existing))
	for _, team := range existing {
		existingSet[team.ID] = struct{}{}
	}

	if err := addSeasonTeams(ctx, q, seasonID, teamIDs, now, existingSet); err != nil {
		return err
	}

	requestedSet := make(map[uuid.UUID]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		requestedSet[id] = struct{}{}
	}

	for _, team := range existing {
		if _, keep := requestedSet[team.ID]; keep {
			continue
		}
		if _, err := q.RemoveSeasonTeam(ctx, dbgen.RemoveSeasonTeamParams{
			DeletedAt: now,
			UpdatedAt: now,
			SeasonID:  seasonID,
			TeamID:    team.ID,
		}); err != nil {
			return fmt.Errorf("unable to remove team %s from season %s: %w", team.ID, seasonID, err)
		}
	}

	return nil
}

// syncSeasonStages reconciles stages: nil-ID entries are created, known IDs
// are updated, stages absent from the request are soft deleted. A request ID
// that matches no existing stage fails the whole sync.
func syncSeasonStages(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID, stages []stageRequest, now time.Time) error {
	existing, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("unable to list season stages: %w", err)
	}

	existingMap := make(map[uuid.UUID]dbgen.Stage, len(existing))
	for _, stage := range existing {
		existingMap[stage.ID] = stage
	}

	requestedSet := make(map[uuid.UUID]struct{})
	for _, stage := range stages {
		if stage.ID == nil {
			if err := createStage(ctx, q, seasonID, stage, now); err != nil {
				return err
			}
			continue
		}

		stageID := *stage.ID
		requestedSet[stageID] = struct{}{}

		if _, exists := existingMap[stageID]; !exists {
			return fmt.Errorf("stage %s not in season %s: %w", stageID, seasonID, errStageNotFound)
		}

		if _, err := q.UpdateStage(ctx, dbgen.UpdateStageParams{
			Name:       stage.Name,
			StageType:  stage.StageType,
			OrderIndex: int64(stage.OrderIndex),
			UpdatedAt:  now,
			ID:         stageID,
		}); err != nil {
			return fmt.Errorf("unable to update stage %s: %w", stageID, err)
		}
	}

	for _, stage := range existing {
		if _, keep := requestedSet[stage.ID]; keep {
			continue
		}
		if _, err := q.DeleteStage(ctx, dbgen.DeleteStageParams{
			DeletedAt: now,
			UpdatedAt: now,
			ID:        stage.ID,
		}); err != nil {
			return fmt.Errorf("unable to delete stage %s: %w", stage.ID, err)
		}
	}

	return nil
}

// deleteSeason soft deletes the season and everything hanging off it.
func deleteSeason(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID) error {
	now := time.Now()

	games, err := q.ListGamesBySeason(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("unable to list season games: %w", err)
	}
	for _, game := range games {
		if _, err := q.DeleteGame(ctx, dbgen.DeleteGameParams{
			DeletedAt: now,
			UpdatedAt: now,
			ID:        game.ID,
		}); err != nil {
			return fmt.Errorf("unable to delete game %s: %w", game.ID, err)
		}
	}

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("unable to list season stages: %w", err)
	}
	for _, stage := range stages {
		if _, err := q.DeleteStage(ctx, dbgen.DeleteStageParams{
			DeletedAt: now,
			UpdatedAt: now,
			ID:        stage.ID,
		}); err != nil {
			return fmt.Errorf("unable to delete stage %s: %w", stage.ID, err)
		}
	}

	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("unable to list season teams: %w", err)
	}
	for _, team := range teams {
		if _, err := q.RemoveSeasonTeam(ctx, dbgen.RemoveSeasonTeamParams{
			DeletedAt: now,
			UpdatedAt: now,
			SeasonID:  seasonID,
			TeamID:    team.ID,
		}); err != nil {
			return fmt.Errorf("unable to remove team %s from season %s: %w", team.ID, seasonID, err)
		}
	}

	if _, err := q.DeleteSeason(ctx, dbgen.DeleteSeasonParams{
		DeletedAt: now,
		UpdatedAt: now,
		ID:        seasonID,
	}); err != nil {
		return fmt.Errorf("unable to delete season: %w", err)
	}

	return nil
}

func moveStage(ctx context.Context, q *dbgen.Queries, seasonID, stageID uuid.UUID, direction string) (seasonAggregate, error) {
	now := time.Now()

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to list season stages: %w", err)
	}

	index := -1
	candidates := make([]rules.StageCandidate, 0, len(stages))
	for i, stage := range stages {
		if stage.ID == stageID {
			index = i
		}
		id := stage.ID
		candidates = append(candidates, rules.StageCandidate{
			ID:         &id,
			Name:       stage.Name,
			StageType:  rules.StageType(stage.StageType),
			OrderIndex: int32(stage.OrderIndex),
		})
	}
	if index == -1 {
		return seasonAggregate{}, errStageNotFound
	}

	if direction == "up" {
		candidates = rules.MoveStageUp(candidates, index)
	} else {
		candidates = rules.MoveStageDown(candidates, index)
	}

	for _, candidate := range candidates {
		if _, err := q.UpdateStage(ctx, dbgen.UpdateStageParams{
			Name:       candidate.Name,
			StageType:  candidate.StageType.String(),
			OrderIndex: int64(candidate.OrderIndex),
			UpdatedAt:  now,
			ID:         *candidate.ID,
		}); err != nil {
			return seasonAggregate{}, fmt.Errorf("unable to update stage %s: %w", *candidate.ID, err)
		}
	}

	return getSeasonAggregate(ctx, q, seasonID)
}

func addSeasonTeams(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID, teamIDs []uuid.UUID, now time.Time, existingSet map[uuid.UUID]struct{}) error {
	for _, teamID := range teamIDs {
		if existingSet != nil {
			if _, exists := existingSet[teamID]; exists {
				continue
			}
		}
		if err := q.AddSeasonTeam(ctx, dbgen.AddSeasonTeamParams{
			ID:        uuid.New(),
			SeasonID:  seasonID,
			TeamID:    teamID,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("unable to add team %s to season %s: %w", teamID, seasonID, err)
		}
	}
	return nil
}

func createStage(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID, stage stageRequest, now time.Time) error {
	if _, err := q.CreateStage(ctx, dbgen.CreateStageParams{
		ID:         uuid.New(),
		SeasonID:   seasonID,
		Name:       stage.Name,
		StageType:  stage.StageType,
		OrderIndex: int64(stage.OrderIndex),
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return fmt.Errorf("unable to create stage %q: %w", stage.Name, err)
	}
	return nil
}

func ensureTeamsExist(ctx context.Context, q *dbgen.Queries, teamIDs []uuid.UUID) error {
	for _, id := range teamIDs {
		if _, err := q.GetTeam(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("team %s: %w", id, errTeamNotFound)
			}
			return fmt.Errorf("unable to get team %s: %w", id, err)
		}
	}
	return nil
}

func getSeasonAggregate(ctx context.Context, q *dbgen.Queries, seasonID uuid.UUID) (seasonAggregate, error) {
	season, err := q.GetSeason(ctx, seasonID)
	if err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to get season: %w", err)
	}

	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to get season teams: %w", err)
	}

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		return seasonAggregate{}, fmt.Errorf("unable to get season stages: %w", err)
	}

	return seasonAggregate{
		Season: season,
		Teams:  teams,
		Stages: stages,
	}, nil
}

func listSeasonAggregates(ctx context.Context, q *dbgen.Queries, competitionID uuid.UUID) ([]seasonAggregate, error) {
	seasons, err := q.ListSeasonsByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("unable to list seasons: %w", err)
	}

	aggregates := make([]seasonAggregate, 0, len(seasons))
	for _, season := range seasons {
		agg, err := getSeasonAggregate(ctx, q, season.ID)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, agg)
	}
	return aggregates, nil
}

// fetchSeasonAggregate loads a season and writes 404/500 responses itself.
// The season must belong to the competition named in the path.
func fetchSeasonAggregate(ctx context.Context, w http.ResponseWriter, logger *zerolog.Logger, q *dbgen.Queries, competitionID, seasonID uuid.UUID) (seasonAggregate, bool) {
	season, err := q.GetSeason(ctx, seasonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return seasonAggregate{}, false
		}
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to fetch season", err)
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return seasonAggregate{}, false
	}
	if season.CompetitionID != competitionID {
		http.Error(w, "Season not found", http.StatusNotFound)
		return seasonAggregate{}, false
	}

	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to fetch season teams", err)
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return seasonAggregate{}, false
	}

	stages, err := q.ListStagesBySeason(ctx, seasonID)
	if err != nil {
		notifications.LogError(logger.Error().Str("season_id", seasonID.String()), "Failed to fetch season stages", err)
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return seasonAggregate{}, false
	}

	return seasonAggregate{Season: season, Teams: teams, Stages: stages}, true
}

func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	set := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, seen := set[id]; seen {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
