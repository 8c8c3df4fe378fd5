package order

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/orders/internal/http/handler/webui/common/component"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/bornholm/orders/internal/orderform"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	form := h.mountedForm(r)
	form.SetValues(valuesFromRequest(r))

	vmodel := component.FormVModel{
		Form: form,
	}

	orderID, err := form.Submit(ctx, h.orders)
	switch {
	case errors.Is(err, orderform.ErrInvalid):
		slog.DebugContext(ctx, "rejected invalid order form")
		h.renderForm(w, r, vmodel, http.StatusUnprocessableEntity)
		return

	case err != nil:
		slog.ErrorContext(ctx, "could not save order", slogx.Error(err))
		sentry.CaptureException(err)

		vmodel.Notice = failureNotice
		h.renderForm(w, r, vmodel, http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		vmodel.Notice = h.savedNotice(ctx, orderID)
		h.renderForm(w, r, vmodel, http.StatusOK)
		return
	}

	if err := h.pushSavedOrder(w, r, orderID); err != nil {
		slog.ErrorContext(ctx, "could not store saved order flash", slogx.Error(err))
	}

	http.Redirect(w, r, string(commonComp.BaseURL(ctx)), http.StatusSeeOther)
}

// renderForm answers htmx requests with the form fragment, always with a
// 200 status so that htmx swaps it, and plain requests with the full page.
func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, vmodel component.FormVModel, statusCode int) {
	if isHTMX(r) {
		renderComponent(w, r, component.OrderForm(vmodel), http.StatusOK)
		return
	}

	h.renderPage(w, r, vmodel, statusCode)
}
