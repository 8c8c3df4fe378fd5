package order

import (
	"net/http"

	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/bornholm/orders/internal/locale"
	"github.com/gorilla/sessions"
)

// PageRenderer renders the full page embedding the given form. It is used
// when a submission comes from a browser without htmx.
type PageRenderer func(w http.ResponseWriter, r *http.Request, form component.FormVModel, statusCode int)

type Handler struct {
	mux          *http.ServeMux
	orders       *service.OrderManager
	sessions     sessions.Store
	formatter    locale.Formatter
	clock        model.Clock
	recompute    bool
	renderPage   PageRenderer
	submitFilter func(http.Handler) http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(orders *service.OrderManager, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:          http.NewServeMux(),
		orders:       orders,
		sessions:     sessionStore,
		formatter:    opts.Formatter,
		clock:        opts.Clock,
		recompute:    opts.RecomputeDefaultOnReset,
		renderPage:   opts.PageRenderer,
		submitFilter: opts.SubmitMiddleware,
	}

	h.mux.Handle("POST /orders", h.submitFilter(http.HandlerFunc(h.handleSubmit)))
	h.mux.Handle("POST /validate/{field}", http.HandlerFunc(h.handleValidate))
	h.mux.Handle("GET /orders/list", http.HandlerFunc(h.getOrderList))
	h.mux.Handle("GET /orders/events", http.HandlerFunc(h.handleOrderEvents))

	return h
}

var _ http.Handler = &Handler{}
