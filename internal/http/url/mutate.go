package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate applies the given mutations to a copy of the url.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u
	query := u.Query()
	copy.RawQuery = query.Encode()

	for _, fn := range funcs {
		fn(&copy)
	}

	return &copy
}

// WithPath appends the given segments to the url path.
func WithPath(segments ...string) MutationFunc {
	return func(u *url.URL) {
		trailingSlash := len(segments) > 0 && strings.HasSuffix(segments[len(segments)-1], "/")

		joined := path.Join(append([]string{"/", u.Path}, segments...)...)
		if trailingSlash && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}
