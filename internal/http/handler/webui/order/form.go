package order

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/bornholm/orders/internal/orderform"
	"github.com/pkg/errors"
)

const (
	sessionName     = "orders"
	flashSavedOrder = "savedOrder"
)

// NewForm mounts a fresh form, computing its appointment default.
func (h *Handler) NewForm() *orderform.Form {
	return orderform.New(h.formOptions()...)
}

// FillFormVModel mounts a fresh form for a page load and attaches the
// confirmation of an order saved by a previous submission, if any.
func (h *Handler) FillFormVModel(w http.ResponseWriter, r *http.Request) component.FormVModel {
	vmodel := component.FormVModel{
		Form: h.NewForm(),
	}

	orderID, ok := h.popSavedOrder(w, r)
	if ok {
		vmodel.Notice = h.savedNotice(r.Context(), orderID)
	}

	return vmodel
}

// mountedForm restores the form mounted by the page the request comes
// from. The appointment default stays the one computed at mount time.
func (h *Handler) mountedForm(r *http.Request) *orderform.Form {
	opts := h.formOptions()

	if raw := r.FormValue(component.FieldMountMinimum); raw != "" {
		minAppointment, err := model.ParseDateTime(raw)
		if err == nil {
			opts = append(opts, orderform.WithMinAppointment(minAppointment))
		} else {
			slog.DebugContext(r.Context(), "ignoring invalid mount minimum", slogx.Error(err))
		}
	}

	return orderform.New(opts...)
}

func (h *Handler) formOptions() []orderform.OptionFunc {
	return []orderform.OptionFunc{
		orderform.WithClock(h.clock),
		orderform.WithRecomputeDefaultOnReset(h.recompute),
	}
}

func valuesFromRequest(r *http.Request) orderform.Values {
	var values orderform.Values
	for _, f := range orderform.Fields {
		values.Set(f, r.PostFormValue(string(f)))
	}
	return values
}

func (h *Handler) savedNotice(ctx context.Context, orderID model.OrderID) *component.Notice {
	message := fmt.Sprintf("Objednávka č. %s byla uložena.", orderID)

	order, err := h.orders.Get(ctx, orderID)
	if err != nil {
		slog.WarnContext(ctx, "could not retrieve saved order", slogx.Error(err), slog.Int64("orderID", int64(orderID)))
	} else {
		message = fmt.Sprintf("Objednávka č. %s pro %s byla uložena.", orderID, order.FullName())
	}

	return &component.Notice{
		Kind:    component.NoticeSuccess,
		Message: message,
	}
}

var failureNotice = &component.Notice{
	Kind:    component.NoticeDanger,
	Message: "Objednávku se nepodařilo uložit. Zkuste to prosím znovu.",
}

func (h *Handler) pushSavedOrder(w http.ResponseWriter, r *http.Request, orderID model.OrderID) error {
	sess, _ := h.sessions.Get(r, sessionName)

	sess.AddFlash(orderID.String(), flashSavedOrder)

	if err := h.sessions.Save(r, w, sess); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) popSavedOrder(w http.ResponseWriter, r *http.Request) (model.OrderID, bool) {
	ctx := r.Context()

	sess, err := h.sessions.Get(r, sessionName)
	if err != nil {
		slog.DebugContext(ctx, "could not decode session", slogx.Error(err))
	}

	flashes := sess.Flashes(flashSavedOrder)
	if len(flashes) == 0 {
		return 0, false
	}

	if err := h.sessions.Save(r, w, sess); err != nil {
		slog.ErrorContext(ctx, "could not save session", slogx.Error(errors.WithStack(err)))
	}

	raw, ok := flashes[len(flashes)-1].(string)
	if !ok {
		return 0, false
	}

	orderID, err := model.ParseOrderID(raw)
	if err != nil {
		return 0, false
	}

	return orderID, true
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func renderComponent(w http.ResponseWriter, r *http.Request, c templ.Component, statusCode int) {
	templ.Handler(c, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
