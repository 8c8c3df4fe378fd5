package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/orders/internal/http/context"
	"github.com/bornholm/orders/internal/http/url"
)

var WithPath = url.WithPath

// BaseURL returns the application base url with the given mutations applied.
func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}
