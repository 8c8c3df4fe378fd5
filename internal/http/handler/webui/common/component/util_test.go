package component

import (
	"context"
	"testing"

	httpCtx "github.com/bornholm/orders/internal/http/context"
)

func TestBaseURL(t *testing.T) {
	type testCase struct {
		Name     string
		BaseURL  string
		Path     []string
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "Root",
			BaseURL:  "",
			Expected: "/",
		},
		{
			Name:     "Events",
			BaseURL:  "/",
			Path:     []string{"/orders/events"},
			Expected: "/orders/events",
		},
		{
			Name:     "PrefixedValidate",
			BaseURL:  "http://127.0.0.1:3003/app/",
			Path:     []string{"/validate", "firstName"},
			Expected: "http://127.0.0.1:3003/app/validate/firstName",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := httpCtx.SetBaseURL(context.Background(), tc.BaseURL)

			if e, g := tc.Expected, string(BaseURL(ctx, WithPath(tc.Path...))); e != g {
				t.Errorf("BaseURL(): expected '%s', got '%s'", e, g)
			}

			if e, g := tc.BaseURL, httpCtx.BaseURL(ctx).String(); tc.BaseURL != "" && e != g {
				t.Errorf("base url should not be modified: expected '%s', got '%s'", e, g)
			}
		})
	}
}
