package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bornholm/orders/internal/adapter/memory"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestOrderManagerSaveAndList(t *testing.T) {
	ctx := context.Background()

	manager := NewOrderManager(memory.NewOrderStore(), WithClock(fixedClock(2025, time.June, 1, 10, 7, 33)))

	orders, err := manager.ListAll(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(orders); e != g {
		t.Fatalf("len(orders): expected %d, got %d", e, g)
	}

	alternate := civil.Time{Hour: 11, Minute: 30}

	input := model.OrderInput{
		FirstName:           "  Jan ",
		LastName:            "Novák",
		BirthDate:           civil.Date{Year: 1990, Month: time.May, Day: 17},
		AppointmentDateTime: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 15}},
		AlternateTime:       &alternate,
	}

	firstID, err := manager.Save(ctx, input)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	secondID, err := manager.Save(ctx, input)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if secondID <= firstID {
		t.Errorf("expected increasing ids, got %d then %d", firstID, secondID)
	}

	orders, err = manager.ListAll(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("orders: %s", spew.Sdump(orders))

	if e, g := 2, len(orders); e != g {
		t.Fatalf("len(orders): expected %d, got %d", e, g)
	}

	first := orders[0]

	if e, g := firstID, first.ID; e != g {
		t.Errorf("orders[0].ID: expected %d, got %d", e, g)
	}

	if e, g := "Jan", first.FirstName; e != g {
		t.Errorf("orders[0].FirstName: expected '%s', got '%s'", e, g)
	}

	if e, g := "2025-06-01T10:07:33", model.FormatDateTime(first.CreatedAt); e != g {
		t.Errorf("orders[0].CreatedAt: expected '%s', got '%s'", e, g)
	}

	if first.AlternateTime == nil {
		t.Fatalf("orders[0].AlternateTime: expected value, got nil")
	}

	if e, g := alternate, *first.AlternateTime; e != g {
		t.Errorf("orders[0].AlternateTime: expected '%v', got '%v'", e, g)
	}

	order, err := manager.Get(ctx, secondID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := secondID, order.ID; e != g {
		t.Errorf("order.ID: expected %d, got %d", e, g)
	}

	if _, err := manager.Get(ctx, 42); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %v", err)
	}
}

func TestOrderManagerSubscribe(t *testing.T) {
	ctx := context.Background()

	manager := NewOrderManager(memory.NewOrderStore())

	var (
		mutex     sync.Mutex
		snapshots [][]*model.Order
	)

	unsubscribe := manager.Subscribe(func(ctx context.Context, orders []*model.Order) {
		mutex.Lock()
		defer mutex.Unlock()
		snapshots = append(snapshots, orders)
	})

	input := model.OrderInput{
		FirstName: "Jana",
		LastName:  "Dvořáková",
		BirthDate: civil.Date{Year: 1985, Month: time.January, Day: 2},
	}

	if _, err := manager.Save(ctx, input); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.Save(ctx, input); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	unsubscribe()
	unsubscribe()

	if _, err := manager.Save(ctx, input); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	mutex.Lock()
	defer mutex.Unlock()

	if e, g := 2, len(snapshots); e != g {
		t.Fatalf("len(snapshots): expected %d, got %d", e, g)
	}

	if e, g := 1, len(snapshots[0]); e != g {
		t.Errorf("len(snapshots[0]): expected %d, got %d", e, g)
	}

	if e, g := 2, len(snapshots[1]); e != g {
		t.Errorf("len(snapshots[1]): expected %d, got %d", e, g)
	}
}

func TestOrderManagerSaveFailure(t *testing.T) {
	ctx := context.Background()

	manager := NewOrderManager(&failingStore{OrderStore: memory.NewOrderStore()})

	notified := false
	defer manager.Subscribe(func(ctx context.Context, orders []*model.Order) {
		notified = true
	})()

	_, err := manager.Save(ctx, model.OrderInput{FirstName: "Jan", LastName: "Novák"})
	if !errors.Is(err, errStorageUnavailable) {
		t.Fatalf("expected errStorageUnavailable, got %v", err)
	}

	if notified {
		t.Errorf("observers should not be notified after a failed write")
	}
}

func TestOrderManagerNotifiesAfterCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &cancellingStore{OrderStore: memory.NewOrderStore(), cancel: cancel}
	manager := NewOrderManager(store)

	var (
		mutex     sync.Mutex
		snapshots [][]*model.Order
	)

	defer manager.Subscribe(func(ctx context.Context, orders []*model.Order) {
		mutex.Lock()
		defer mutex.Unlock()
		snapshots = append(snapshots, orders)
	})()

	orderID, err := manager.Save(ctx, model.OrderInput{FirstName: "Jan", LastName: "Novák"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if ctx.Err() == nil {
		t.Fatalf("expected request context to be cancelled by the store")
	}

	mutex.Lock()
	defer mutex.Unlock()

	if e, g := 1, len(snapshots); e != g {
		t.Fatalf("len(snapshots): expected %d, got %d", e, g)
	}

	if e, g := 1, len(snapshots[0]); e != g {
		t.Fatalf("len(snapshots[0]): expected %d, got %d", e, g)
	}

	if e, g := orderID, snapshots[0][0].ID; e != g {
		t.Errorf("snapshots[0][0].ID: expected %d, got %d", e, g)
	}
}

var errStorageUnavailable = errors.New("storage unavailable")

// cancellingStore cancels the request context once the order is written, as
// a client disconnecting right after its submission would.
type cancellingStore struct {
	*memory.OrderStore
	cancel context.CancelFunc
}

func (s *cancellingStore) CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error) {
	orderID, err := s.OrderStore.CreateOrder(ctx, input, createdAt)
	s.cancel()
	return orderID, err
}

func (s *cancellingStore) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.OrderStore.QueryOrders(ctx, opts)
}

type failingStore struct {
	*memory.OrderStore
}

func (s *failingStore) CreateOrder(ctx context.Context, input model.OrderInput, createdAt civil.DateTime) (model.OrderID, error) {
	return 0, errors.WithStack(errStorageUnavailable)
}

func fixedClock(year int, month time.Month, day, hour, minute, sec int) model.Clock {
	return func() time.Time {
		return time.Date(year, month, day, hour, minute, sec, 0, time.Local)
	}
}
