package url

import (
	"net/url"
	"testing"
)

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		Base     string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "RootPath",
			Base:     "/",
			Funcs:    []MutationFunc{WithPath("/orders/events")},
			Expected: "/orders/events",
		},
		{
			Name:     "PrefixedBase",
			Base:     "http://127.0.0.1:3003/app/",
			Funcs:    []MutationFunc{WithPath("assets/", "style.css")},
			Expected: "http://127.0.0.1:3003/app/assets/style.css",
		},
		{
			Name:     "TrailingSlash",
			Base:     "/",
			Funcs:    []MutationFunc{WithPath("/metrics/")},
			Expected: "/metrics/",
		},
		{
			Name:     "KeepsQuery",
			Base:     "/?saved=1",
			Funcs:    []MutationFunc{WithPath("orders")},
			Expected: "/orders?saved=1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			base, err := url.Parse(tc.Base)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			mutated := Mutate(base, tc.Funcs...)

			if e, g := tc.Expected, mutated.String(); e != g {
				t.Errorf("Mutate(): expected '%s', got '%s'", e, g)
			}

			if e, g := tc.Base, base.String(); e != g {
				t.Errorf("base url should not be modified: expected '%s', got '%s'", e, g)
			}
		})
	}
}
