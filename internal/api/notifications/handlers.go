// internal/api/notifications/handlers.go
package notifications

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/api/apiutil"
)

var confirmMethodAttrs = map[string]string{
	http.MethodDelete: "hx-delete",
	http.MethodPost:   "hx-post",
	http.MethodPut:    "hx-put",
}

// GET /v1/confirm?message=...&method=DELETE&url=/v1/...
//
// Renders a confirmation modal for a destructive action. The modal's confirm
// button issues the given method against the given URL via htmx; cancel just
// removes the modal. Only same-origin API URLs are accepted.
func HandleConfirm(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		message = "Are you sure?"
	}

	method := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("method")))
	methodAttr, ok := confirmMethodAttrs[method]
	if !ok {
		http.Error(w, "Unsupported confirmation method", http.StatusBadRequest)
		return
	}

	targetURL := r.URL.Query().Get("url")
	if !strings.HasPrefix(targetURL, "/v1/") {
		http.Error(w, "Invalid confirmation URL", http.StatusBadRequest)
		return
	}

	logger.Debug().Str("method", method).Str("url", targetURL).Msg("Rendering confirmation dialog")

	component := confirmComponent(message, methodAttr, targetURL)
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render confirmation dialog", "Failed to render confirmation") {
		return
	}
}

// GET /v1/notifications/close
//
// Swap target for self-dismissing toasts. Returns an empty body so the
// element swaps itself away.
func HandleNotificationsClose(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(""))
}
