package order

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/adapter/memory"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/orderform"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func TestHandlerSubmit(t *testing.T) {
	type testCase struct {
		Name           string
		Values         url.Values
		HTMX           bool
		ExpectedStatus int
		ExpectedOrders int
		ExpectedBody   []string
	}

	testCases := []testCase{
		{
			Name:           "InvalidHTMX",
			Values:         url.Values{"appointmentDateTime": {"2025-06-01T10:15"}},
			HTMX:           true,
			ExpectedStatus: http.StatusOK,
			ExpectedOrders: 0,
			ExpectedBody: []string{
				orderform.MessageFirstNameRequired,
				orderform.MessageLastNameRequired,
				orderform.MessageBirthDateRequired,
			},
		},
		{
			Name:           "InvalidPlain",
			Values:         url.Values{"firstName": {"Jan"}, "lastName": {"Novák"}, "birthDate": {"17.05.1990"}, "appointmentDateTime": {"2025-06-01T10:15"}},
			HTMX:           false,
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedOrders: 0,
			ExpectedBody: []string{
				orderform.MessageBirthDateInvalid,
				`value="Jan"`,
			},
		},
		{
			Name:           "ValidHTMX",
			Values:         validValues(),
			HTMX:           true,
			ExpectedStatus: http.StatusOK,
			ExpectedOrders: 1,
			ExpectedBody: []string{
				"Objednávka č. 1 pro Jan Novák byla uložena.",
				`name="mountMinimum" value="2025-06-01T10:15"`,
			},
		},
		{
			Name:           "ValidPlain",
			Values:         validValues(),
			HTMX:           false,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedOrders: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			manager := service.NewOrderManager(memory.NewOrderStore())
			handler := newTestHandler(manager)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.Values.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tc.HTMX {
				req.Header.Set("HX-Request", "true")
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			body := res.Body.String()
			for _, s := range tc.ExpectedBody {
				if !strings.Contains(body, s) {
					t.Errorf("expected body to contain '%s', got '%s'", s, body)
				}
			}

			orders, err := manager.ListAll(context.Background())
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedOrders, len(orders); e != g {
				t.Errorf("len(orders): expected %d, got %d", e, g)
			}
		})
	}
}

func TestHandlerValidate(t *testing.T) {
	type testCase struct {
		Name           string
		Field          string
		Value          string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{Name: "Required", Field: "lastName", Value: " ", ExpectedStatus: http.StatusOK, ExpectedBody: orderform.MessageLastNameRequired},
		{Name: "Invalid", Field: "alternateTime", Value: "9h", ExpectedStatus: http.StatusOK, ExpectedBody: orderform.MessageAlternateTimeInvalid},
		{Name: "Valid", Field: "birthDate", Value: "1990-05-17", ExpectedStatus: http.StatusOK, ExpectedBody: `id="field-birthDate" class="field"`},
		{Name: "UnknownField", Field: "email", Value: "jan@example.com", ExpectedStatus: http.StatusNotFound},
	}

	manager := service.NewOrderManager(memory.NewOrderStore())
	handler := newTestHandler(manager)

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			values := url.Values{tc.Field: {tc.Value}}

			req := httptest.NewRequest(http.MethodPost, "/validate/"+tc.Field, strings.NewReader(values.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("HX-Request", "true")

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			if tc.ExpectedBody == "" {
				return
			}

			if body := res.Body.String(); !strings.Contains(body, tc.ExpectedBody) {
				t.Errorf("expected body to contain '%s', got '%s'", tc.ExpectedBody, body)
			}
		})
	}
}

func TestHandlerOrderList(t *testing.T) {
	ctx := context.Background()

	manager := service.NewOrderManager(memory.NewOrderStore())
	handler := newTestHandler(manager)

	get := func() string {
		req := httptest.NewRequest(http.MethodGet, "/orders/list", nil)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("res.Code: expected %d, got %d", e, g)
		}

		return res.Body.String()
	}

	if body := get(); !strings.Contains(body, "Zatím nejsou žádné objednávky.") {
		t.Errorf("expected empty list, got '%s'", body)
	}

	if _, err := manager.Save(ctx, testOrderInput()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := get()

	expected := []string{
		"Jan Novák",
		"17. května 1990",
		"neděle 1. 6. 2025 10:15",
		"nezvolen",
	}

	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("expected list to contain '%s', got '%s'", s, body)
		}
	}
}

func TestHandlerOrderEvents(t *testing.T) {
	manager := service.NewOrderManager(memory.NewOrderStore())

	server := httptest.NewServer(newTestHandler(manager))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/orders/events", nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := "text/event-stream", res.Header.Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected '%s', got '%s'", e, g)
	}

	reader := bufio.NewReader(res.Body)

	name, data, err := readEvent(reader)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "orders", name; e != g {
		t.Errorf("event name: expected '%s', got '%s'", e, g)
	}

	if !strings.Contains(data, "Zatím nejsou žádné objednávky.") {
		t.Errorf("expected initial empty snapshot, got '%s'", data)
	}

	if _, err := manager.Save(ctx, testOrderInput()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, data, err = readEvent(reader)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(data, "Jan Novák") {
		t.Errorf("expected snapshot with saved order, got '%s'", data)
	}
}

func readEvent(reader *bufio.Reader) (string, string, error) {
	var (
		name string
		data []string
	)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", errors.WithStack(err)
		}

		line = strings.TrimSuffix(line, "\n")

		switch {
		case line == "" && name != "":
			return name, strings.Join(data, "\n"), nil
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
}

func newTestHandler(manager *service.OrderManager) *Handler {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	clock := func() time.Time {
		return time.Date(2025, time.June, 1, 10, 7, 33, 0, time.Local)
	}

	return NewHandler(manager, sessionStore, WithClock(clock))
}

func validValues() url.Values {
	return url.Values{
		"mountMinimum":        {"2025-06-01T10:15"},
		"firstName":           {"Jan"},
		"lastName":            {"Novák"},
		"birthDate":           {"1990-05-17"},
		"appointmentDateTime": {"2025-06-01T10:15"},
	}
}

func testOrderInput() model.OrderInput {
	return model.OrderInput{
		FirstName:           "Jan",
		LastName:            "Novák",
		BirthDate:           civil.Date{Year: 1990, Month: time.May, Day: 17},
		AppointmentDateTime: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 15}},
	}
}
