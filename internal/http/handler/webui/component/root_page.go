package component

import (
	order "github.com/bornholm/orders/internal/http/handler/webui/order/component"
)

type RootPageVModel struct {
	Form order.FormVModel
	List order.ListVModel
}

func (m RootPageVModel) lang() string {
	if m.List.Formatter == nil {
		return ""
	}

	return m.List.Formatter.Tag().String()
}
