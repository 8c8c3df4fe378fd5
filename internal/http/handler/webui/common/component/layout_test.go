package component

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/orders/internal/http/context"
	"github.com/pkg/errors"
)

func TestPage(t *testing.T) {
	type testCase struct {
		Name       string
		VModel     PageVModel
		Desktop    bool
		Expected   []string
		Unexpected []string
	}

	testCases := []testCase{
		{
			Name:       "Defaults",
			VModel:     PageVModel{Title: "Objednávky"},
			Expected:   []string{"<!doctype html>", `<html lang="cs">`, "<title>Objednávky</title>", `<main class="container"><p>obsah</p></main>`},
			Unexpected: []string{"is-desktop"},
		},
		{
			Name:     "Desktop",
			VModel:   PageVModel{Title: "Objednávky", Lang: "cs-CZ"},
			Desktop:  true,
			Expected: []string{`<html lang="cs-CZ">`, `<body class="is-desktop">`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := httpCtx.SetDesktop(context.Background(), tc.Desktop)
			ctx = templ.WithChildren(ctx, templ.Raw("<p>obsah</p>"))

			var buf bytes.Buffer
			if err := Page(tc.VModel).Render(ctx, &buf); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			body := buf.String()

			for _, s := range tc.Expected {
				if !strings.Contains(body, s) {
					t.Errorf("expected page to contain '%s', got '%s'", s, body)
				}
			}

			for _, s := range tc.Unexpected {
				if strings.Contains(body, s) {
					t.Errorf("page should not contain '%s', got '%s'", s, body)
				}
			}
		})
	}
}

func TestErrorPageDefaultLink(t *testing.T) {
	ctx := httpCtx.SetBaseURL(context.Background(), "/app/")

	var buf bytes.Buffer
	if err := ErrorPage(ErrorPageVModel{Message: "Nastala chyba."}).Render(ctx, &buf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := buf.String()

	for _, s := range []string{"<p>Nastala chyba.</p>", `<a href="/app/">Zpět na formulář</a>`} {
		if !strings.Contains(body, s) {
			t.Errorf("expected page to contain '%s', got '%s'", s, body)
		}
	}
}
