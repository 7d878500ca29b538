package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/metrics"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) error
	FindByID(ctx context.Context, id string) (models.Order, error)
	ListNewestFirst(ctx context.Context, limit int64) ([]models.Order, error)
}

// MenuLookup resolves line items at pricing time.
type MenuLookup interface {
	FindByID(ctx context.Context, id string) (models.MenuItem, error)
}

type OrderOptions struct {
	// StrictPricing rejects orders that reference unknown menu items. When
	// false such line items are kept on the order and priced at zero.
	StrictPricing bool
}

type OrderService struct {
	orders OrderStore
	menu   MenuLookup
	log    logrus.FieldLogger
	opts   OrderOptions
	now    func() time.Time
	newID  func() string
}

func NewOrderService(orders OrderStore, menu MenuLookup, log logrus.FieldLogger, opts OrderOptions) *OrderService {
	return &OrderService{
		orders: orders,
		menu:   menu,
		log:    log,
		opts:   opts,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create prices the request against the current catalog and persists the
// order in one insert. Prices are read live: a concurrent price change between
// lookup and insert is reflected in the total and nothing snapshots them.
func (s *OrderService) Create(ctx context.Context, in models.OrderCreate) (models.Order, error) {
	if err := helper.Validate(in); err != nil {
		metrics.OrdersTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return models.Order{}, err
	}

	total, unresolved, err := s.price(ctx, in.Items)
	if err != nil {
		if helper.IsValidation(err) {
			metrics.OrdersTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		} else {
			metrics.OrdersTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		}
		return models.Order{}, err
	}

	order := models.Order{
		ID:              s.newID(),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		Items:           append([]models.OrderLineItem{}, in.Items...),
		TotalAmount:     total,
		OrderType:       in.OrderType,
		Status:          models.OrderStatusPending,
		CreatedAt:       s.now().UTC(),
		DeliveryAddress: in.DeliveryAddress,
		SpecialNotes:    in.SpecialNotes,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		metrics.OrdersTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return models.Order{}, err
	}

	metrics.OrdersTotal.WithLabelValues(metrics.OutcomeCreated).Inc()
	metrics.OrderAmount.Observe(total)
	s.log.WithFields(logrus.Fields{
		"order_id":         order.ID,
		"order_type":       order.OrderType,
		"total_amount":     order.TotalAmount,
		"unresolved_items": unresolved,
	}).Info("order created")

	return order, nil
}

// price sums resolved price x quantity over the line items in input order.
// It returns the number of line items that did not resolve.
func (s *OrderService) price(ctx context.Context, items []models.OrderLineItem) (float64, int, error) {
	total := decimal.Zero
	unresolved := 0

	for i, line := range items {
		item, err := s.menu.FindByID(ctx, line.MenuItemID)
		if helper.IsNotFound(err) {
			if s.opts.StrictPricing {
				return 0, 0, helper.ValidationError{
					Field:   fmt.Sprintf("items[%d].menu_item_id", i),
					Message: "menu item not found: " + line.MenuItemID,
				}
			}
			unresolved++
			metrics.UnresolvedLineItems.Inc()
			s.log.WithFields(logrus.Fields{
				"menu_item_id": line.MenuItemID,
				"line":         i,
			}).Warn("line item references unknown menu item, priced at zero")
			continue
		}
		if err != nil {
			return 0, 0, err
		}

		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
	}

	return total.InexactFloat64(), unresolved, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// ListAll returns orders newest first, capped at ListLimit.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListNewestFirst(ctx, ListLimit)
}
