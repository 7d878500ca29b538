package controller

import (
	"net/http"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/ShriyanshSinghPatel/AngularForm/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type OrderController struct {
	base
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService, log logrus.FieldLogger, timeout time.Duration) *OrderController {
	return &OrderController{base: base{log: log, timeout: timeout}, orders: orders}
}

// Create an order. The response carries the computed total.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var in models.OrderCreate
	if err := helper.DecodeJSON(w, r, &in); err != nil {
		c.fail(w, r, err)
		return
	}

	order, err := c.orders.Create(ctx, in)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, order)
}

// Get all orders, newest first
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	orders, err := c.orders.ListAll(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, orders)
}

// Get a single order
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	order, err := c.orders.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, order)
}
