// internal/api/games/components.go
package games

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
	"github.com/kvesterberg/fixturedesk/internal/rules"
)

const gameDateDisplayLayout = "2006-01-02 15:04"

func gamesPageComponent(competitionID uuid.UUID, season dbgen.Season, games []dbgen.Game, teams []dbgen.Team, stages []dbgen.Stage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-6">`); err != nil {
			return err
		}
		header := fmt.Sprintf(
			`<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold text-gray-900">Games %s to %s</h1><a href="/competitions/%s/seasons" class="text-sm text-gray-600 hover:text-gray-900">All seasons</a></div>`,
			season.StartDate.Format("2006-01-02"),
			season.EndDate.Format("2006-01-02"),
			competitionID,
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		if _, err := io.WriteString(w, buildGameFormHTML(competitionID, season.ID, teams, stages)); err != nil {
			return err
		}
		listOpen := fmt.Sprintf(
			`<div id="games-list" hx-get="/v1/competitions/%s/seasons/%s/games" hx-trigger="refreshGamesList from:body">`,
			competitionID,
			season.ID,
		)
		if _, err := io.WriteString(w, listOpen); err != nil {
			return err
		}
		if _, err := io.WriteString(w, buildGamesListHTML(competitionID, season.ID, games, teamNameIndex(teams))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div>`); err != nil {
			return err
		}
		return nil
	})
}

func gamesListComponent(competitionID, seasonID uuid.UUID, games []dbgen.Game, teams []dbgen.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildGamesListHTML(competitionID, seasonID, games, teamNameIndex(teams)))
		return err
	})
}

func gameDetailComponent(competitionID uuid.UUID, game dbgen.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildGameCardHTML(competitionID, game, nil))
		return err
	})
}

func buildGameFormHTML(competitionID, seasonID uuid.UUID, teams []dbgen.Team, stages []dbgen.Stage) string {
	var teamOptions strings.Builder
	for _, team := range teams {
		teamOptions.WriteString(fmt.Sprintf(
			`<option value="%s">%s</option>`,
			team.ID,
			html.EscapeString(team.Name),
		))
	}

	var stageOptions strings.Builder
	stageOptions.WriteString(`<option value="">No stage</option>`)
	for _, stage := range stages {
		stageOptions.WriteString(fmt.Sprintf(
			`<option value="%s">%s</option>`,
			stage.ID,
			html.EscapeString(stage.Name),
		))
	}

	var statusOptions strings.Builder
	for _, status := range []rules.GameStatus{
		rules.GameStatusScheduled,
		rules.GameStatusPlaying,
		rules.GameStatusFinished,
		rules.GameStatusCancelled,
	} {
		statusOptions.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`, status, status))
	}

	return fmt.Sprintf(
		`<form hx-post="/v1/competitions/%s/seasons/%s/games" hx-target="#games-list" hx-swap="beforeend" class="flex flex-wrap items-end gap-2 rounded border bg-white p-4 shadow-sm">
			<label class="text-sm text-gray-700">Date<br/><input type="date" name="date" required class="rounded border px-2 py-1 text-sm"/></label>
			<label class="text-sm text-gray-700">Kickoff<br/><input type="time" name="kickoff" class="rounded border px-2 py-1 text-sm"/></label>
			<label class="text-sm text-gray-700">Home<br/><select name="home_team_id" required class="rounded border px-2 py-1 text-sm">%s</select></label>
			<label class="text-sm text-gray-700">Away<br/><select name="away_team_id" required class="rounded border px-2 py-1 text-sm">%s</select></label>
			<label class="text-sm text-gray-700">Stage<br/><select name="stage_id" class="rounded border px-2 py-1 text-sm">%s</select></label>
			<label class="text-sm text-gray-700">Status<br/><select name="status" class="rounded border px-2 py-1 text-sm">%s</select></label>
			<label class="text-sm text-gray-700">Home score<br/><input type="number" name="home_score" min="0" class="w-20 rounded border px-2 py-1 text-sm"/></label>
			<label class="text-sm text-gray-700">Away score<br/><input type="number" name="away_score" min="0" class="w-20 rounded border px-2 py-1 text-sm"/></label>
			<button type="submit" class="rounded bg-gray-900 px-3 py-1 text-sm text-white">Add game</button>
		</form>`,
		competitionID,
		seasonID,
		teamOptions.String(),
		teamOptions.String(),
		stageOptions.String(),
		statusOptions.String(),
	)
}

func buildGamesListHTML(competitionID, seasonID uuid.UUID, games []dbgen.Game, teamNames map[uuid.UUID]string) string {
	if len(games) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No games found.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<div class="grid gap-4">`)
	for _, game := range games {
		builder.WriteString(buildGameCardHTML(competitionID, game, teamNames))
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func buildGameCardHTML(competitionID uuid.UUID, game dbgen.Game, teamNames map[uuid.UUID]string) string {
	home := teamLabel(teamNames, game.HomeTeamID)
	away := teamLabel(teamNames, game.AwayTeamID)
	matchup := fmt.Sprintf("%s vs %s", home, away)

	score := ""
	if game.HomeScore.Valid && game.AwayScore.Valid {
		score = fmt.Sprintf(
			`<span class="font-semibold text-gray-900">%d : %d</span>`,
			game.HomeScore.Int64,
			game.AwayScore.Int64,
		)
	}

	deleteURL := fmt.Sprintf("/v1/competitions/%s/seasons/%s/games/%s", competitionID, game.SeasonID, game.ID)
	confirmURL := fmt.Sprintf(
		"/v1/confirm?message=%s&method=DELETE&url=%s",
		url.QueryEscape("Delete game "+matchup+"?"),
		url.QueryEscape(deleteURL),
	)

	return fmt.Sprintf(
		`<div class="rounded border bg-white p-4 shadow-sm" data-game-id="%s">
			<div class="flex flex-wrap items-center justify-between gap-2">
				<div class="text-lg font-semibold text-gray-900">%s</div>
				<div class="flex items-center gap-3">
					%s
					<span class="rounded bg-gray-100 px-2 py-0.5 text-xs text-gray-700">%s</span>
					<button type="button" class="text-sm text-red-600 hover:text-red-800"
						hx-get="%s" hx-target="#toast-container" hx-swap="beforeend">Delete</button>
				</div>
			</div>
			<div class="mt-2 text-sm text-gray-700">%s</div>
		</div>`,
		game.ID,
		html.EscapeString(matchup),
		score,
		html.EscapeString(game.Status),
		confirmURL,
		game.Date.Format(gameDateDisplayLayout),
	)
}

func teamLabel(teamNames map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := teamNames[id]; ok {
		return name
	}
	return id.String()[:8]
}

func teamNameIndex(teams []dbgen.Team) map[uuid.UUID]string {
	index := make(map[uuid.UUID]string, len(teams))
	for _, team := range teams {
		index[team.ID] = team.Name
	}
	return index
}
