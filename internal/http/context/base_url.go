package context

import (
	"context"
	"net/url"
)

const keyBaseURL contextKey = "baseURL"

func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	copy := *baseURL

	return &copy
}

func SetBaseURL(ctx context.Context, baseURL string) context.Context {
	u, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		u = &url.URL{Path: "/"}
	}

	return context.WithValue(ctx, keyBaseURL, u)
}
