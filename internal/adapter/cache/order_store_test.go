package cache

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	gormAdapter "github.com/bornholm/orders/internal/adapter/gorm"
	"github.com/bornholm/orders/internal/adapter/memory"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
)

func TestOrderStore(t *testing.T) {
	ctx := context.Background()

	backend := &countingStore{OrderStore: memory.NewOrderStore()}
	store := NewOrderStore(backend, 10, time.Minute)

	input := model.OrderInput{
		FirstName: "Jan",
		LastName:  "Novák",
		BirthDate: civil.Date{Year: 1990, Month: time.May, Day: 17},
	}

	firstID, err := store.CreateOrder(ctx, input, model.Now(nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		orders, err := store.QueryOrders(ctx, port.QueryOrdersOptions{})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, len(orders); e != g {
			t.Fatalf("len(orders): expected %d, got %d", e, g)
		}
	}

	if e, g := int64(3), backend.queries.Load(); e != g {
		t.Errorf("backend.queries: expected %d, got %d", e, g)
	}

	order, err := store.GetOrderByID(ctx, firstID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := firstID, order.ID; e != g {
		t.Errorf("order.ID: expected %d, got %d", e, g)
	}

	if e, g := int64(0), backend.gets.Load(); e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	secondID, err := store.CreateOrder(ctx, input, model.Now(nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetOrderByID(ctx, secondID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.GetOrderByID(ctx, secondID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), backend.gets.Load(); e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	if _, err := store.GetOrderByID(ctx, 99); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %v", err)
	}
}

func TestOrderStoreSharedDatabase(t *testing.T) {
	ctx := context.Background()

	dsn := filepath.Join(t.TempDir(), "orders.sqlite")

	openStore := func() *gormAdapter.Store {
		db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		t.Cleanup(func() {
			sqlDB, err := db.DB()
			if err != nil {
				return
			}
			sqlDB.Close()
		})

		return gormAdapter.NewStore(db)
	}

	// Two stores on the same file stand for two processes sharing it.
	cached := NewOrderStore(openStore(), 10, time.Minute)
	other := openStore()

	input := model.OrderInput{
		FirstName:           "Jan",
		LastName:            "Novák",
		BirthDate:           civil.Date{Year: 1990, Month: time.May, Day: 17},
		AppointmentDateTime: civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 10, Minute: 15}},
	}

	if _, err := cached.CreateOrder(ctx, input, model.Now(nil)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	orders, err := cached.QueryOrders(ctx, port.QueryOrdersOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(orders); e != g {
		t.Fatalf("len(orders): expected %d, got %d", e, g)
	}

	otherID, err := other.CreateOrder(ctx, input, model.Now(nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	orders, err = cached.QueryOrders(ctx, port.QueryOrdersOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(orders); e != g {
		t.Fatalf("len(orders): expected %d after a write through another store, got %d", e, g)
	}

	if e, g := otherID, orders[1].ID; e != g {
		t.Errorf("orders[1].ID: expected %d, got %d", e, g)
	}
}

type countingStore struct {
	*memory.OrderStore
	queries atomic.Int64
	gets    atomic.Int64
}

func (s *countingStore) QueryOrders(ctx context.Context, opts port.QueryOrdersOptions) ([]*model.Order, error) {
	s.queries.Add(1)
	return s.OrderStore.QueryOrders(ctx, opts)
}

func (s *countingStore) GetOrderByID(ctx context.Context, id model.OrderID) (*model.Order, error) {
	s.gets.Add(1)
	return s.OrderStore.GetOrderByID(ctx, id)
}
