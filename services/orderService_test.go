package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/ShriyanshSinghPatel/AngularForm/repository"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc    *OrderService
	menu   *repository.MemoryMenuRepository
	orders *repository.MemoryOrderRepository
	hook   *test.Hook
}

func newOrderFixture(t *testing.T, opts OrderOptions) orderFixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	store := repository.NewMemoryStore()

	require.NoError(t, store.Menu.Insert(context.Background(), models.MenuItem{
		ID: "app-001", Name: "Paneer Tikka", Price: 180, Category: models.CategoryAppetizers,
		IsAvailable: true, PreparationTime: 20, Ingredients: []string{"paneer"},
	}))
	require.NoError(t, store.Menu.Insert(context.Background(), models.MenuItem{
		ID: "bev-001", Name: "Masala Chai", Price: 30.5, Category: models.CategoryBeverages,
		IsAvailable: true, PreparationTime: 5, Ingredients: []string{},
	}))

	return orderFixture{
		svc:    NewOrderService(store.Orders, store.Menu, logger, opts),
		menu:   store.Menu,
		orders: store.Orders,
		hook:   hook,
	}
}

func orderInput(items ...models.OrderLineItem) models.OrderCreate {
	return models.OrderCreate{
		CustomerName:  "Asha",
		CustomerPhone: "9999999999",
		OrderType:     models.OrderTypeTakeout,
		Items:         append([]models.OrderLineItem{}, items...),
	}
}

func TestOrderServiceCreatePricesLineItems(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})
	fixed := time.Date(2026, 3, 1, 18, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	f.svc.now = func() time.Time { return fixed }

	order, err := f.svc.Create(context.Background(), orderInput(
		models.OrderLineItem{MenuItemID: "app-001", Quantity: 2},
	))
	require.NoError(t, err)

	assert.Equal(t, 360.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
	assert.True(t, order.CreatedAt.Equal(fixed))

	stored, err := f.svc.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestOrderServiceCreateSumsExactly(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})

	order, err := f.svc.Create(context.Background(), orderInput(
		models.OrderLineItem{MenuItemID: "app-001", Quantity: 1},
		models.OrderLineItem{MenuItemID: "bev-001", Quantity: 3},
	))
	require.NoError(t, err)
	assert.Equal(t, 271.5, order.TotalAmount)
	assert.Len(t, order.Items, 2)
}

func TestOrderServiceCreateWithNoItems(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})

	order, err := f.svc.Create(context.Background(), orderInput())
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.TotalAmount)
	assert.Equal(t, []models.OrderLineItem{}, order.Items)
}

func TestOrderServiceUnknownMenuItemLenient(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})

	order, err := f.svc.Create(context.Background(), orderInput(
		models.OrderLineItem{MenuItemID: "nonexistent", Quantity: 1},
		models.OrderLineItem{MenuItemID: "app-001", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, 180.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "nonexistent", order.Items[0].MenuItemID)

	var warned bool
	for _, entry := range f.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["menu_item_id"] == "nonexistent" {
			warned = true
		}
	}
	assert.True(t, warned, "expected a warning for the unresolved line item")
}

func TestOrderServiceUnknownMenuItemStrict(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{StrictPricing: true})

	_, err := f.svc.Create(context.Background(), orderInput(
		models.OrderLineItem{MenuItemID: "app-001", Quantity: 1},
		models.OrderLineItem{MenuItemID: "nonexistent", Quantity: 1},
	))

	var ve helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items[1].menu_item_id", ve.Field)

	orders, err := f.orders.ListNewestFirst(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderServiceRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name      string
		in        models.OrderCreate
		wantField string
	}{
		{"zero quantity", orderInput(models.OrderLineItem{MenuItemID: "app-001", Quantity: 0}), "items[0].quantity"},
		{"negative quantity", orderInput(models.OrderLineItem{MenuItemID: "app-001", Quantity: -2}), "items[0].quantity"},
		{"missing menu item id", orderInput(models.OrderLineItem{Quantity: 1}), "items[0].menu_item_id"},
		{"missing customer name", func() models.OrderCreate {
			in := orderInput()
			in.CustomerName = ""
			return in
		}(), "customer_name"},
		{"missing order type", func() models.OrderCreate {
			in := orderInput()
			in.OrderType = ""
			return in
		}(), "order_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t, OrderOptions{})
			_, err := f.svc.Create(context.Background(), tt.in)

			var ve helper.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)

			orders, err := f.orders.ListNewestFirst(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderServiceAcceptsFreeTextEmail(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})
	in := orderInput(models.OrderLineItem{MenuItemID: "app-001", Quantity: 1})
	in.CustomerEmail = "n/a"

	order, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "n/a", order.CustomerEmail)
}

func TestOrderServiceAcceptsUnlistedOrderType(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})
	in := orderInput(models.OrderLineItem{MenuItemID: "bev-001", Quantity: 2})
	in.OrderType = "dine_in"

	order, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.OrderType("dine_in"), order.OrderType)
}

type failingMenu struct{ err error }

func (m failingMenu) FindByID(ctx context.Context, id string) (models.MenuItem, error) {
	return models.MenuItem{}, m.err
}

func TestOrderServicePropagatesLookupFailure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	orders := repository.NewMemoryOrderRepository()
	cause := helper.InfrastructureError{Op: "find menu item", Err: errors.New("connection reset")}
	svc := NewOrderService(orders, failingMenu{err: cause}, logger, OrderOptions{})

	_, err := svc.Create(context.Background(), orderInput(models.OrderLineItem{MenuItemID: "app-001", Quantity: 1}))
	assert.ErrorIs(t, err, cause.Err)

	stored, err := orders.ListNewestFirst(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestOrderServiceListAllNewestFirst(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	f.svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		order, err := f.svc.Create(context.Background(), orderInput(models.OrderLineItem{MenuItemID: "bev-001", Quantity: 1}))
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrderServiceGetUnknown(t *testing.T) {
	f := newOrderFixture(t, OrderOptions{})

	_, err := f.svc.Get(context.Background(), "missing")
	var nf helper.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Resource)
}
