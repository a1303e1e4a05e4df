// internal/api/seasons/components.go
package seasons

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
)

func seasonsPageComponent(competition dbgen.Competition, aggregates []seasonAggregate) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-6">`); err != nil {
			return err
		}
		header := fmt.Sprintf(
			`<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold text-gray-900">%s seasons</h1><a href="/competitions" class="text-sm text-gray-600 hover:text-gray-900">All competitions</a></div>`,
			html.EscapeString(competition.Name),
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		listOpen := fmt.Sprintf(
			`<div id="seasons-list" hx-get="/v1/competitions/%s/seasons" hx-trigger="refreshSeasonsList from:body">`,
			competition.ID,
		)
		if _, err := io.WriteString(w, listOpen); err != nil {
			return err
		}
		if _, err := io.WriteString(w, buildSeasonsListHTML(competition.ID, aggregates)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div>`); err != nil {
			return err
		}
		return nil
	})
}

func seasonsListComponent(competitionID uuid.UUID, aggregates []seasonAggregate) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildSeasonsListHTML(competitionID, aggregates))
		return err
	})
}

func seasonDetailComponent(agg seasonAggregate) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildSeasonCardHTML(agg.Season.CompetitionID, agg))
		return err
	})
}

func stagesListComponent(competitionID uuid.UUID, agg seasonAggregate) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildStagesListHTML(competitionID, agg.Season.ID, agg.Stages))
		return err
	})
}

func buildSeasonsListHTML(competitionID uuid.UUID, aggregates []seasonAggregate) string {
	if len(aggregates) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No seasons found.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<div class="grid gap-4">`)
	for _, agg := range aggregates {
		builder.WriteString(buildSeasonCardHTML(competitionID, agg))
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func buildSeasonCardHTML(competitionID uuid.UUID, agg seasonAggregate) string {
	season := agg.Season
	seasonLabel := seasonDisplayName(season)
	deleteURL := fmt.Sprintf("/v1/competitions/%s/seasons/%s", competitionID, season.ID)
	confirmURL := fmt.Sprintf(
		"/v1/confirm?message=%s&method=DELETE&url=%s",
		url.QueryEscape("Delete season "+seasonLabel+"?"),
		url.QueryEscape(deleteURL),
	)

	teamNames := make([]string, 0, len(agg.Teams))
	for _, team := range agg.Teams {
		teamNames = append(teamNames, html.EscapeString(team.Abbreviation))
	}

	return fmt.Sprintf(
		`<div class="rounded border bg-white p-4 shadow-sm" data-season-id="%s">
			<div class="flex flex-wrap items-center justify-between gap-2">
				<div class="text-lg font-semibold text-gray-900">%s</div>
				<div class="flex items-center gap-2">
					<a href="/competitions/%s/seasons/%s/games" class="text-sm text-gray-600 hover:text-gray-900">Games</a>
					<button type="button" class="text-sm text-red-600 hover:text-red-800"
						hx-get="%s" hx-target="#toast-container" hx-swap="beforeend">Delete</button>
				</div>
			</div>
			<div class="mt-2 text-sm text-gray-700">Teams: %s</div>
			%s
		</div>`,
		season.ID,
		html.EscapeString(seasonLabel),
		competitionID,
		season.ID,
		confirmURL,
		strings.Join(teamNames, ", "),
		buildStagesListHTML(competitionID, season.ID, agg.Stages),
	)
}

func buildStagesListHTML(competitionID, seasonID uuid.UUID, stages []dbgen.Stage) string {
	if len(stages) == 0 {
		return `<div class="mt-2 text-sm text-gray-500">No stages.</div>`
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(`<ol id="stages-%s" class="mt-2 space-y-1">`, seasonID))
	for _, stage := range stages {
		moveBase := fmt.Sprintf("/v1/competitions/%s/seasons/%s/stages/%s/move", competitionID, seasonID, stage.ID)
		builder.WriteString(fmt.Sprintf(
			`<li class="flex items-center gap-2 text-sm text-gray-700" data-stage-id="%s">
				<span class="w-6 text-right text-xs text-gray-400">%d</span>
				<span>%s</span>
				<span class="rounded bg-gray-100 px-1 text-xs text-gray-500">%s</span>
				<span class="ml-auto flex gap-1">
					<button type="button" hx-post="%s?direction=up" hx-target="#stages-%s" hx-swap="outerHTML" class="text-xs text-gray-500 hover:text-gray-900">&uarr;</button>
					<button type="button" hx-post="%s?direction=down" hx-target="#stages-%s" hx-swap="outerHTML" class="text-xs text-gray-500 hover:text-gray-900">&darr;</button>
				</span>
			</li>`,
			stage.ID,
			stage.OrderIndex,
			html.EscapeString(stage.Name),
			html.EscapeString(stage.StageType),
			moveBase, seasonID,
			moveBase, seasonID,
		))
	}
	builder.WriteString(`</ol>`)
	return builder.String()
}

func seasonDisplayName(season dbgen.Season) string {
	start := season.StartDate.Format("Jan 2, 2006")
	end := season.EndDate.Format("Jan 2, 2006")
	return start + " - " + end
}
