// internal/templates/layouts/base.go
package layouts

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Base wraps content in the full HTML shell shared by every page.
func Base(content templ.Component, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, fmt.Sprintf(`<title>%s</title>`, html.EscapeString(pageTitle(title)))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<script src="https://unpkg.com/htmx.org@1.9.12"></script>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="/static/css/app.css"/></head><body class="min-h-screen bg-gray-50 text-gray-900">`); err != nil {
			return err
		}
		if err := navBar().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="mx-auto max-w-5xl px-4 py-6">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main><div id="toast-container" class="fixed bottom-4 right-4 z-50 space-y-2"></div></body></html>`); err != nil {
			return err
		}
		return nil
	})
}

// Stack renders components in order, for pages assembled from several parts.
func Stack(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func pageTitle(title string) string {
	if title == "" {
		return "Fixturedesk"
	}
	return title + " | Fixturedesk"
}

func navBar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<header class="border-b bg-white">
			<nav class="mx-auto flex max-w-5xl items-center gap-6 px-4 py-3">
				<a href="/" class="text-lg font-semibold">Fixturedesk</a>
				<a href="/competitions" class="text-sm text-gray-600 hover:text-gray-900">Competitions</a>
				<a href="/teams" class="text-sm text-gray-600 hover:text-gray-900">Teams</a>
				<a href="/schedule" class="text-sm text-gray-600 hover:text-gray-900">Schedule</a>
				<div class="ml-auto">
					<input type="search" name="q" placeholder="Search"
						class="rounded border px-2 py-1 text-sm"
						hx-get="/v1/nav/search" hx-trigger="input changed delay:300ms" hx-target="#nav-search-results"/>
					<div id="nav-search-results" class="absolute z-40"></div>
				</div>
			</nav>
		</header>`)
		return err
	})
}
