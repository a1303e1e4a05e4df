// internal/api/schedule/components.go
package schedule

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
)

const scheduleDateLayout = "Mon 02 Jan 2006 15:04"

func schedulePageComponent(competitions []dbgen.Competition, seasons []dbgen.Season, selected *seasonView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-6"><h1 class="text-2xl font-semibold text-gray-900">Schedule</h1>`); err != nil {
			return err
		}
		if len(competitions) == 0 {
			_, err := io.WriteString(w, `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No competitions yet.</div></div>`)
			return err
		}

		var builder strings.Builder
		builder.WriteString(`<div class="flex flex-wrap gap-4"><label class="text-sm text-gray-700">Competition<br/>`)
		builder.WriteString(`<select name="competition_id" class="rounded border px-2 py-1 text-sm" hx-get="/v1/schedule/seasons" hx-trigger="change" hx-target="#schedule-seasons">`)
		for i, competition := range competitions {
			selectedAttr := ""
			if i == 0 {
				selectedAttr = ` selected`
			}
			builder.WriteString(fmt.Sprintf(
				`<option value="%s"%s>%s</option>`,
				competition.ID,
				selectedAttr,
				html.EscapeString(competition.Name),
			))
		}
		builder.WriteString(`</select></label><div id="schedule-seasons">`)
		if _, err := io.WriteString(w, builder.String()); err != nil {
			return err
		}
		if err := seasonsSelectorComponent(seasons, selected).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></div></div>`)
		return err
	})
}

func seasonsSelectorComponent(seasons []dbgen.Season, selected *seasonView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(seasons) == 0 {
			_, err := io.WriteString(w, `<div class="rounded border border-dashed p-4 text-sm text-gray-500">No seasons for this competition.</div>`)
			return err
		}

		var builder strings.Builder
		builder.WriteString(`<label class="text-sm text-gray-700">Season<br/>`)
		builder.WriteString(`<select name="season_id" class="rounded border px-2 py-1 text-sm" hx-get="/v1/schedule/games" hx-trigger="change" hx-target="#schedule-games">`)
		for i, season := range seasons {
			selectedAttr := ""
			if i == 0 {
				selectedAttr = ` selected`
			}
			builder.WriteString(fmt.Sprintf(
				`<option value="%s"%s>%s to %s</option>`,
				season.ID,
				selectedAttr,
				season.StartDate.Format("2006-01-02"),
				season.EndDate.Format("2006-01-02"),
			))
		}
		builder.WriteString(`</select></label><div id="schedule-games">`)
		if _, err := io.WriteString(w, builder.String()); err != nil {
			return err
		}
		if selected != nil {
			if err := gamesTableComponent(*selected, uuid.Nil).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func gamesTableComponent(view seasonView, stageFilter uuid.UUID) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var builder strings.Builder

		builder.WriteString(`<div class="mt-4 space-y-3">`)
		builder.WriteString(buildStageSelectHTML(view, stageFilter))
		builder.WriteString(buildGamesTableHTML(view))
		builder.WriteString(`</div>`)

		_, err := io.WriteString(w, builder.String())
		return err
	})
}

func buildStageSelectHTML(view seasonView, stageFilter uuid.UUID) string {
	if len(view.Stages) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(`<label class="text-sm text-gray-700">Stage<br/>`)
	builder.WriteString(fmt.Sprintf(
		`<select name="stage_id" class="rounded border px-2 py-1 text-sm" hx-get="/v1/schedule/games?season_id=%s" hx-trigger="change" hx-target="#schedule-games">`,
		view.Season.ID,
	))
	allSelected := ""
	if stageFilter == uuid.Nil {
		allSelected = ` selected`
	}
	builder.WriteString(fmt.Sprintf(`<option value="%s"%s>All stages</option>`, stageFilterAll, allSelected))
	for _, stage := range view.Stages {
		selectedAttr := ""
		if stage.ID == stageFilter {
			selectedAttr = ` selected`
		}
		builder.WriteString(fmt.Sprintf(
			`<option value="%s"%s>%s</option>`,
			stage.ID,
			selectedAttr,
			html.EscapeString(stage.Name),
		))
	}
	builder.WriteString(`</select></label>`)
	return builder.String()
}

func buildGamesTableHTML(view seasonView) string {
	if len(view.Games) == 0 {
		return `<div class="rounded border border-dashed p-4 text-sm text-gray-500">No games scheduled.</div>`
	}

	teamNames := make(map[uuid.UUID]string, len(view.Teams))
	for _, team := range view.Teams {
		teamNames[team.ID] = team.Name
	}
	stageNames := make(map[uuid.UUID]string, len(view.Stages))
	for _, stage := range view.Stages {
		stageNames[stage.ID] = stage.Name
	}

	var builder strings.Builder
	builder.WriteString(`<table class="w-full border-collapse text-sm">
		<thead><tr class="border-b text-left text-gray-500">
			<th class="py-2 pr-4">Date</th>
			<th class="py-2 pr-4">Home</th>
			<th class="py-2 pr-4">Away</th>
			<th class="py-2 pr-4">Score</th>
			<th class="py-2 pr-4">Stage</th>
			<th class="py-2">Status</th>
		</tr></thead><tbody>`)
	for _, game := range view.Games {
		score := ""
		if game.HomeScore.Valid && game.AwayScore.Valid {
			score = fmt.Sprintf("%d : %d", game.HomeScore.Int64, game.AwayScore.Int64)
		}
		stageName := ""
		if game.StageID.Valid {
			stageName = stageNames[game.StageID.UUID]
		}
		builder.WriteString(fmt.Sprintf(
			`<tr class="border-b">
				<td class="py-2 pr-4">%s</td>
				<td class="py-2 pr-4">%s</td>
				<td class="py-2 pr-4">%s</td>
				<td class="py-2 pr-4">%s</td>
				<td class="py-2 pr-4">%s</td>
				<td class="py-2">%s</td>
			</tr>`,
			game.Date.Format(scheduleDateLayout),
			html.EscapeString(scheduleTeamLabel(teamNames, game.HomeTeamID)),
			html.EscapeString(scheduleTeamLabel(teamNames, game.AwayTeamID)),
			score,
			html.EscapeString(stageName),
			html.EscapeString(game.Status),
		))
	}
	builder.WriteString(`</tbody></table>`)
	return builder.String()
}

func scheduleTeamLabel(teamNames map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := teamNames[id]; ok {
		return name
	}
	return id.String()[:8]
}
