package component

const (
	htmxScriptURL    = "https://unpkg.com/htmx.org@2.0.4"
	htmxSSEScriptURL = "https://unpkg.com/htmx-ext-sse@2.2.2"
)

type PageVModel struct {
	Title string
	Lang  string
}

func (m PageVModel) lang() string {
	if m.Lang == "" {
		return "cs"
	}

	return m.Lang
}
