// internal/api/notifications/handlers_test.go
package notifications

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func confirmURL(message, method, target string) string {
	return "/v1/confirm?message=" + url.QueryEscape(message) +
		"&method=" + method +
		"&url=" + url.QueryEscape(target)
}

func TestHandleConfirmRendersModal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, confirmURL("Delete team Rovers?", "DELETE", "/v1/teams/abc"), nil)
	rec := httptest.NewRecorder()

	HandleConfirm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Delete team Rovers?") {
		t.Errorf("expected message in body, got %q", body)
	}
	if !strings.Contains(body, `hx-delete="/v1/teams/abc"`) {
		t.Errorf("expected hx-delete attribute, got %q", body)
	}
	if !strings.Contains(body, "Cancel") {
		t.Errorf("expected cancel button, got %q", body)
	}
}

func TestHandleConfirmCancelIssuesNoRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, confirmURL("Sure?", "DELETE", "/v1/competitions/abc"), nil)
	rec := httptest.NewRecorder()

	HandleConfirm(rec, req)

	// Cancel must close the modal purely client side. The only htmx verb in
	// the modal belongs to the confirm button.
	body := rec.Body.String()
	if got := strings.Count(body, "hx-delete"); got != 1 {
		t.Errorf("expected exactly one hx-delete, got %d", got)
	}
	for _, verb := range []string{"hx-get", "hx-post", "hx-put"} {
		if strings.Contains(body, verb) {
			t.Errorf("unexpected %s in confirm modal: %q", verb, body)
		}
	}
}

func TestHandleConfirmRejectsBadMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, confirmURL("Sure?", "PATCH", "/v1/teams/abc"), nil)
	rec := httptest.NewRecorder()

	HandleConfirm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleConfirmRejectsForeignURL(t *testing.T) {
	for _, target := range []string{"https://example.com/x", "/admin/drop", ""} {
		req := httptest.NewRequest(http.MethodGet, confirmURL("Sure?", "DELETE", target), nil)
		rec := httptest.NewRecorder()

		HandleConfirm(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("url %q: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestHandleConfirmDefaultsMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, confirmURL("", "DELETE", "/v1/teams/abc"), nil)
	rec := httptest.NewRecorder()

	HandleConfirm(rec, req)

	if !strings.Contains(rec.Body.String(), "Are you sure?") {
		t.Errorf("expected default message, got %q", rec.Body.String())
	}
}

func TestHandleNotificationsClose(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/notifications/close", nil)
	rec := httptest.NewRecorder()

	HandleNotificationsClose(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
