package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/db"
)

const sweepJobTimeout = 2 * time.Minute

// SweepOverdueGames finds games still marked scheduled whose date has passed
// and logs a digest for operators. Game status stays untouched; score entry
// is a deliberate manual step.
func SweepOverdueGames(ctx context.Context, database *db.DB, now time.Time) (int, error) {
	if database == nil {
		return 0, fmt.Errorf("overdue game sweep requires database")
	}

	games, err := database.Queries.ListOverdueScheduledGames(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue games: %w", err)
	}
	if len(games) == 0 {
		return 0, nil
	}

	logger := log.Ctx(ctx)
	oldest := games[0].Date
	logger.Warn().
		Int("overdue_games", len(games)).
		Time("oldest_date", oldest).
		Msg("Scheduled games past their date await a result")
	for _, game := range games {
		logger.Debug().
			Str("game_id", game.ID.String()).
			Str("season_id", game.SeasonID.String()).
			Time("date", game.Date).
			Msg("Overdue scheduled game")
	}

	return len(games), nil
}

// RegisterOverdueSweepJob schedules the overdue game sweep at the configured
// interval.
func RegisterOverdueSweepJob(database *db.DB, intervalMinutes int) error {
	if database == nil {
		return fmt.Errorf("overdue sweep job requires database")
	}
	if intervalMinutes <= 0 {
		return ErrInvalidInterval
	}

	jobName := "overdue_game_sweep"
	jobLogger := log.With().
		Str("component", "overdue_game_sweep_job").
		Str("job_name", jobName).
		Logger()

	_, err := AddIntervalJob(jobName, time.Duration(intervalMinutes)*time.Minute, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepJobTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if _, err := SweepOverdueGames(ctx, database, time.Now().UTC()); err != nil {
			jobLogger.Error().Err(err).Msg("Overdue game sweep failed")
		}
	})
	return err
}
