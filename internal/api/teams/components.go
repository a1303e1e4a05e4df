// internal/api/teams/components.go
package teams

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	dbgen "github.com/kvesterberg/fixturedesk/internal/db/generated"
)

func teamsPageComponent(teams []dbgen.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-6">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold text-gray-900">Teams</h1></div>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form hx-post="/v1/teams" hx-target="#teams-list" hx-swap="beforeend" class="flex flex-wrap gap-2">
			<input type="text" name="name" placeholder="Team name" required class="rounded border px-2 py-1 text-sm"/>
			<input type="text" name="abbreviation" placeholder="ABV" required class="w-20 rounded border px-2 py-1 text-sm"/>
			<input type="text" name="location" placeholder="Location" class="rounded border px-2 py-1 text-sm"/>
			<button type="submit" class="rounded bg-gray-900 px-3 py-1 text-sm text-white">Add</button>
		</form>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="teams-list" hx-get="/v1/teams" hx-trigger="refreshTeamsList from:body">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, buildTeamsListHTML(teams)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div>`); err != nil {
			return err
		}
		return nil
	})
}

func teamsListComponent(teams []dbgen.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildTeamsListHTML(teams))
		return err
	})
}

func teamDetailComponent(team dbgen.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildTeamCardHTML(team))
		return err
	})
}

func buildTeamsListHTML(teams []dbgen.Team) string {
	if len(teams) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No teams found.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<div class="grid gap-4">`)
	for _, team := range teams {
		builder.WriteString(buildTeamCardHTML(team))
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func buildTeamCardHTML(team dbgen.Team) string {
	name := html.EscapeString(team.Name)
	abbreviation := html.EscapeString(team.Abbreviation)
	location := html.EscapeString(team.Location)
	if location == "" {
		location = "&mdash;"
	}
	id := team.ID.String()
	deleteURL := fmt.Sprintf("/v1/teams/%s", id)
	confirmURL := fmt.Sprintf(
		"/v1/confirm?message=%s&method=DELETE&url=%s",
		url.QueryEscape("Delete team "+team.Name+"?"),
		url.QueryEscape(deleteURL),
	)

	return fmt.Sprintf(
		`<div class="rounded border bg-white p-4 shadow-sm" data-team-id="%s">
			<div class="flex flex-wrap items-center justify-between gap-2">
				<div class="text-lg font-semibold text-gray-900">%s <span class="text-xs text-gray-500">%s</span></div>
				<button type="button" class="text-sm text-red-600 hover:text-red-800"
					hx-get="%s" hx-target="#toast-container" hx-swap="beforeend">Delete</button>
			</div>
			<div class="mt-2 text-sm text-gray-700">%s</div>
		</div>`,
		id,
		name,
		abbreviation,
		confirmURL,
		location,
	)
}
