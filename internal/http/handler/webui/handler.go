package webui

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/orders/internal/core/service"
	"github.com/bornholm/orders/internal/http/handler/webui/component"
	"github.com/bornholm/orders/internal/http/handler/webui/order"
	orderComp "github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux    *http.ServeMux
	orders *order.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(orderManager *service.OrderManager, sessionStore sessions.Store, funcs ...order.OptionFunc) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	funcs = append(funcs, order.WithPageRenderer(h.renderRootPage))

	h.orders = order.NewHandler(orderManager, sessionStore, funcs...)

	h.mux.Handle("GET /{$}", http.HandlerFunc(h.getRootPage))
	mount(h.mux, "/", h.orders)

	return h
}

func (h *Handler) getRootPage(w http.ResponseWriter, r *http.Request) {
	h.renderRootPage(w, r, h.orders.FillFormVModel(w, r), http.StatusOK)
}

func (h *Handler) renderRootPage(w http.ResponseWriter, r *http.Request, form orderComp.FormVModel, statusCode int) {
	vmodel := component.RootPageVModel{
		Form: form,
		List: h.orders.FillListVModel(r.Context()),
	}

	rootPage := component.RootPage(vmodel)
	templ.Handler(rootPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
