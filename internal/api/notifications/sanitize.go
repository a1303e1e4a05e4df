// internal/api/notifications/sanitize.go
package notifications

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// Sanitize normalizes a user-facing message for logging and display:
// lowercased, punctuation stripped, whitespace collapsed.
func Sanitize(message string) string {
	var builder strings.Builder
	builder.Grow(len(message))
	for _, r := range strings.ToLower(message) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		builder.WriteRune(r)
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}

// LogError records a failure with both the sanitized display message and the
// underlying error, so log search keys stay stable across copy changes.
// Callers pass an open event so entity fields ride along:
//
//	notifications.LogError(logger.Error().Str("game_id", id), "Failed to delete game", err)
func LogError(evt *zerolog.Event, message string, err error) {
	evt.Err(err).
		Str("display_message", message).
		Str("sanitized_message", Sanitize(message)).
		Msg("User-visible error")
}
