// internal/api/nav/components.go
package nav

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// BreadcrumbsComponent renders a trail built by BuildBreadcrumbs. The last
// crumb is the current page and is not a link.
func BreadcrumbsComponent(crumbs []Crumb) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var builder strings.Builder
		builder.WriteString(`<nav class="flex items-center gap-1 text-sm text-gray-500" aria-label="Breadcrumb">`)
		for i, crumb := range crumbs {
			if i > 0 {
				builder.WriteString(`<span class="text-gray-300">/</span>`)
			}
			if i == len(crumbs)-1 {
				builder.WriteString(fmt.Sprintf(
					`<span class="text-gray-900">%s</span>`,
					html.EscapeString(crumb.Label),
				))
				continue
			}
			builder.WriteString(fmt.Sprintf(
				`<a href="%s" class="hover:text-gray-900">%s</a>`,
				crumb.URL,
				html.EscapeString(crumb.Label),
			))
		}
		builder.WriteString(`</nav>`)
		_, err := io.WriteString(w, builder.String())
		return err
	})
}

func searchResultsComponent(results []searchResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(results) == 0 {
			_, err := io.WriteString(w, "")
			return err
		}
		var builder strings.Builder
		builder.WriteString(`<ul class="rounded border bg-white shadow-lg">`)
		for _, result := range results {
			builder.WriteString(fmt.Sprintf(
				`<li><a href="%s" class="flex items-center justify-between px-3 py-2 text-sm hover:bg-gray-50"><span>%s</span><span class="text-xs text-gray-400">%s</span></a></li>`,
				result.URL,
				html.EscapeString(result.Name),
				html.EscapeString(result.Kind),
			))
		}
		builder.WriteString(`</ul>`)
		_, err := io.WriteString(w, builder.String())
		return err
	})
}
