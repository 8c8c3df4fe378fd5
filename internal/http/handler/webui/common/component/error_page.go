package component

import "context"

type LinkItem struct {
	URL   string
	Label string
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func (m ErrorPageVModel) links(ctx context.Context) []LinkItem {
	if len(m.Links) > 0 {
		return m.Links
	}

	return []LinkItem{
		{URL: string(BaseURL(ctx)), Label: "Zpět na formulář"},
	}
}
