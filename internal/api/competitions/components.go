// internal/api/competitions/components.go
package competitions

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

func competitionsPageComponent(competitions []dbgen.Competition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="space-y-6">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold text-gray-900">Competitions</h1></div>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form hx-post="/v1/competitions" hx-target="#competitions-list" hx-swap="beforeend" class="flex gap-2">
			<input type="text" name="name" placeholder="Competition name" required class="rounded border px-2 py-1 text-sm"/>
			<button type="submit" class="rounded bg-gray-900 px-3 py-1 text-sm text-white">Add</button>
		</form>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="competitions-list" hx-get="/v1/competitions" hx-trigger="refreshCompetitionsList from:body">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, buildCompetitionsListHTML(competitions)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div>`); err != nil {
			return err
		}
		return nil
	})
}

func competitionsListComponent(competitions []dbgen.Competition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildCompetitionsListHTML(competitions))
		return err
	})
}

func competitionDetailComponent(competition dbgen.Competition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildCompetitionCardHTML(competition))
		return err
	})
}

func buildCompetitionsListHTML(competitions []dbgen.Competition) string {
	if len(competitions) == 0 {
		return `<div class="rounded border border-dashed p-6 text-center text-sm text-gray-500">No competitions found.</div>`
	}

	var builder strings.Builder
	builder.WriteString(`<div class="grid gap-4">`)
	for _, competition := range competitions {
		builder.WriteString(buildCompetitionCardHTML(competition))
	}
	builder.WriteString(`</div>`)
	return builder.String()
}

func buildCompetitionCardHTML(competition dbgen.Competition) string {
	name := html.EscapeString(competition.Name)
	id := competition.ID.String()
	deleteURL := fmt.Sprintf("/v1/competitions/%s", id)
	confirmURL := fmt.Sprintf(
		"/v1/confirm?message=%s&method=DELETE&url=%s",
		url.QueryEscape("Delete competition "+competition.Name+"?"),
		url.QueryEscape(deleteURL),
	)

	return fmt.Sprintf(
		`<div class="rounded border bg-white p-4 shadow-sm" data-competition-id="%s">
			<div class="flex flex-wrap items-center justify-between gap-2">
				<a href="/competitions/%s" class="text-lg font-semibold text-gray-900 hover:underline">%s</a>
				<div class="flex items-center gap-2">
					<a href="/competitions/%s/seasons" class="text-sm text-gray-600 hover:text-gray-900">Seasons</a>
					<button type="button" class="text-sm text-red-600 hover:text-red-800"
						hx-get="%s" hx-target="#toast-container" hx-swap="beforeend">Delete</button>
				</div>
			</div>
			<div class="mt-2 text-xs text-gray-500">Updated %s</div>
		</div>`,
		id,
		id,
		name,
		id,
		confirmURL,
		competition.UpdatedAt.Format("Jan 2, 2006"),
	)
}
