package webui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/orders/internal/adapter/memory"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/http/handler/webui/order"
	"github.com/bornholm/orders/internal/orderform"
	"github.com/gorilla/sessions"
)

func TestRootPage(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body := res.Body.String()

	expected := []string{
		"Objednávkový formulář",
		`name="appointmentDateTime" type="datetime-local" value="2025-06-01T10:15"`,
		`min="2025-06-01T10:15" step="900"`,
		`sse-connect="/orders/events"`,
		"Zatím nejsou žádné objednávky.",
	}

	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("expected page to contain '%s', got '%s'", s, body)
		}
	}

	if strings.Contains(body, orderform.MessageFirstNameRequired) {
		t.Errorf("pristine form should not display messages")
	}
}

func TestPostRedirectGet(t *testing.T) {
	handler := newTestHandler()

	values := url.Values{
		"mountMinimum":        {"2025-06-01T10:15"},
		"firstName":           {"Jana"},
		"lastName":            {"Dvořáková"},
		"birthDate":           {"1990-05-17"},
		"appointmentDateTime": {"2025-06-01T10:15"},
		"alternateTime":       {"14:45"},
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	cookies := res.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	get := func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if updated := res.Result().Cookies(); len(updated) > 0 {
			cookies = updated
		}

		return res.Body.String()
	}

	body := get()

	expected := []string{
		"Objednávka č. 1 pro Jana Dvořáková byla uložena.",
		"17. května 1990",
		"neděle 1. 6. 2025 10:15",
		"14:45",
	}

	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("expected page to contain '%s', got '%s'", s, body)
		}
	}

	if body := get(); strings.Contains(body, "byla uložena") {
		t.Errorf("confirmation should only be displayed once")
	}
}

func TestInvalidSubmissionRendersPage(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(url.Values{}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusUnprocessableEntity, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body := res.Body.String()

	for _, s := range []string{"<!doctype html>", orderform.MessageFirstNameRequired, "Seznam objednávek"} {
		if !strings.Contains(body, s) {
			t.Errorf("expected page to contain '%s', got '%s'", s, body)
		}
	}
}

func newTestHandler() *Handler {
	manager := service.NewOrderManager(memory.NewOrderStore())
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	clock := func() time.Time {
		return time.Date(2025, time.June, 1, 10, 7, 33, 0, time.Local)
	}

	return NewHandler(manager, sessionStore, order.WithClock(clock))
}
