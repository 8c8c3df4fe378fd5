package order

import (
	"net/http"

	"github.com/bornholm/orders/internal/http/handler/webui/common"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/bornholm/orders/internal/orderform"
)

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	field, ok := orderform.ParseField(r.PathValue("field"))
	if !ok {
		common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	form := h.mountedForm(r)
	form.Set(field, r.PostFormValue(string(field)))
	form.Blur(field)

	renderComponent(w, r, component.FormField(form, field), http.StatusOK)
}
