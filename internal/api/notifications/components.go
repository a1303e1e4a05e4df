// internal/api/notifications/components.go
package notifications

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// SuccessToastMillis is how long success toasts stay up before removing
// themselves.
const SuccessToastMillis = 4000

// ToastComponent renders a transient message into the toast container.
// A positive duration (milliseconds) removes the toast after it elapses,
// zero keeps it until dismissed.
func ToastComponent(message string, durationMillis int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		removal := ""
		if durationMillis > 0 {
			removal = fmt.Sprintf(
				` hx-get="/v1/notifications/close" hx-trigger="load delay:%dms" hx-swap="outerHTML"`,
				durationMillis,
			)
		}
		toast := fmt.Sprintf(
			`<div class="rounded border bg-white px-4 py-2 text-sm text-gray-900 shadow-lg"%s>
				<div class="flex items-center gap-3">
					<span>%s</span>
					<button type="button" class="text-gray-400 hover:text-gray-700" onclick="this.closest('div.rounded').remove()">&times;</button>
				</div>
			</div>`,
			removal,
			html.EscapeString(message),
		)
		_, err := io.WriteString(w, toast)
		return err
	})
}

// ErrorToastComponent is the red variant used for failures surfaced to the
// operator.
func ErrorToastComponent(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		toast := fmt.Sprintf(
			`<div class="rounded border border-red-300 bg-red-50 px-4 py-2 text-sm text-red-800 shadow-lg">
				<div class="flex items-center gap-3">
					<span>%s</span>
					<button type="button" class="text-red-400 hover:text-red-700" onclick="this.closest('div.rounded').remove()">&times;</button>
				</div>
			</div>`,
			html.EscapeString(message),
		)
		_, err := io.WriteString(w, toast)
		return err
	})
}

// confirmComponent renders a modal that issues the destructive request only
// when confirmed. Cancel removes the modal client side without any request.
func confirmComponent(message, methodAttr, targetURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		modal := fmt.Sprintf(
			`<div class="confirm-modal fixed inset-0 z-50 flex items-center justify-center bg-black/40">
				<div class="w-full max-w-sm rounded bg-white p-6 shadow-xl">
					<p class="text-sm text-gray-900">%s</p>
					<div class="mt-4 flex justify-end gap-2">
						<button type="button" class="rounded border px-3 py-1 text-sm text-gray-700"
							onclick="this.closest('.confirm-modal').remove()">Cancel</button>
						<button type="button" class="rounded bg-red-600 px-3 py-1 text-sm text-white"
							%s="%s" hx-target="closest .confirm-modal" hx-swap="outerHTML">Confirm</button>
					</div>
				</div>
			</div>`,
			html.EscapeString(message),
			methodAttr,
			html.EscapeString(targetURL),
		)
		_, err := io.WriteString(w, modal)
		return err
	})
}
