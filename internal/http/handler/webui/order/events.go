package order

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/orders/internal/http/handler/webui/common"
	"github.com/bornholm/orders/internal/http/handler/webui/order/component"
	"github.com/pkg/errors"
	sse "github.com/tmaxmax/go-sse"
)

const keepAliveInterval = 30 * time.Second

var orderEventType = sse.Type(component.EventOrder)

// handleOrderEvents streams the rendered order list as server-sent events,
// once on connection and then after each saved order.
func (h *Handler) handleOrderEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := sse.Upgrade(w, r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	view := NewListView(h.orders)

	if err := view.Mount(ctx); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	defer view.Unmount()

	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	if err := session.Flush(); err != nil {
		slog.DebugContext(ctx, "could not open event stream", slogx.Error(errors.WithStack(err)))
		return
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	var buff bytes.Buffer

	for {
		select {
		case <-ctx.Done():
			return

		case <-keepAlive.C:
			message := &sse.Message{}
			message.AppendComment("keep-alive")

			if err := send(session, message); err != nil {
				slog.DebugContext(ctx, "could not write keep-alive", slogx.Error(err))
				return
			}

		case orders := <-view.Updates():
			buff.Reset()

			vmodel := component.ListVModel{
				Loaded:    true,
				Orders:    orders,
				Formatter: h.formatter,
			}

			if err := component.OrderListContent(vmodel).Render(ctx, &buff); err != nil {
				slog.ErrorContext(ctx, "could not render order list", slogx.Error(errors.WithStack(err)))
				return
			}

			message := &sse.Message{Type: orderEventType}
			message.AppendData(buff.String())

			if err := send(session, message); err != nil {
				slog.DebugContext(ctx, "could not write order event", slogx.Error(err))
				return
			}
		}
	}
}

func send(session *sse.Session, message *sse.Message) error {
	if err := session.Send(message); err != nil {
		return errors.WithStack(err)
	}

	if err := session.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
