// Command smoke walks the public API of a running server and exits non-zero
// on the first unexpected response.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

type check struct {
	name string
	run  func(*smoke) error
}

type smoke struct {
	client  *resty.Client
	log     logrus.FieldLogger
	itemID  string
	orderID string
}

func main() {
	defaultURL := os.Getenv("API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8000/api"
	}
	baseURL := flag.String("url", defaultURL, "API base URL, including the /api prefix")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.WithField("url", *baseURL).Info("Testing API")

	s := &smoke{
		client: resty.New().
			SetBaseURL(*baseURL).
			SetTimeout(*timeout).
			SetRetryCount(0).
			SetHeader("Content-Type", "application/json"),
		log: log,
	}

	checks := []check{
		{"root", (*smoke).root},
		{"restaurant info", (*smoke).restaurantInfo},
		{"create menu item", (*smoke).createMenuItem},
		{"list menu", (*smoke).listMenu},
		{"list menu by category", (*smoke).listByCategory},
		{"reject unknown category", (*smoke).rejectUnknownCategory},
		{"create order", (*smoke).createOrder},
		{"list orders", (*smoke).listOrders},
		{"get order", (*smoke).getOrder},
		{"delete menu item", (*smoke).deleteMenuItem},
	}

	for _, c := range checks {
		if err := c.run(s); err != nil {
			log.WithError(err).WithField("check", c.name).Error("FAILED")
			os.Exit(1)
		}
		log.WithField("check", c.name).Info("passed")
	}
	log.Infof("All %d checks passed", len(checks))
}

func expectStatus(resp *resty.Response, err error, want int) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() != want {
		return fmt.Errorf("%s %s: got status %d, want %d: %s",
			resp.Request.Method, resp.Request.URL, resp.StatusCode(), want, resp.String())
	}
	return nil
}

func (s *smoke) root() error {
	var body map[string]string
	resp, err := s.client.R().SetResult(&body).Get("/")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if body["message"] == "" {
		return fmt.Errorf("root: empty welcome message")
	}
	return nil
}

func (s *smoke) restaurantInfo() error {
	var info models.RestaurantInfo
	resp, err := s.client.R().SetResult(&info).Get("/restaurant-info")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if info.Name == "" || len(info.OpeningHours) == 0 {
		return fmt.Errorf("restaurant info: incomplete record %+v", info)
	}
	return nil
}

func (s *smoke) createMenuItem() error {
	name, description, price := "Smoke Test Tikka", "Created by the smoke check", 180.0
	var item models.MenuItem
	resp, err := s.client.R().
		SetBody(models.MenuItemCreate{
			Name:        &name,
			Description: &description,
			Price:       &price,
			Category:    models.CategoryAppetizers,
			IsSpicy:     true,
			Ingredients: []string{"Paneer", "Spices"},
		}).
		SetResult(&item).
		Post("/menu")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if item.ID == "" || item.Price != price {
		return fmt.Errorf("create menu item: unexpected record %+v", item)
	}
	s.itemID = item.ID
	return nil
}

func (s *smoke) listMenu() error {
	var items []models.MenuItem
	resp, err := s.client.R().SetResult(&items).Get("/menu")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	for _, item := range items {
		if item.ID == s.itemID {
			return nil
		}
	}
	return fmt.Errorf("list menu: created item %s not listed", s.itemID)
}

func (s *smoke) listByCategory() error {
	for _, category := range []models.MenuCategory{models.CategoryAppetizers, models.CategoryMainCourse} {
		var items []models.MenuItem
		resp, err := s.client.R().SetResult(&items).Get("/menu/category/" + string(category))
		if err := expectStatus(resp, err, http.StatusOK); err != nil {
			return err
		}
		for _, item := range items {
			if item.Category != category {
				return fmt.Errorf("category %s: got item %s in %s", category, item.ID, item.Category)
			}
		}
	}
	return nil
}

func (s *smoke) rejectUnknownCategory() error {
	resp, err := s.client.R().Get("/menu/category/soups")
	return expectStatus(resp, err, http.StatusUnprocessableEntity)
}

func (s *smoke) createOrder() error {
	var order models.Order
	resp, err := s.client.R().
		SetBody(models.OrderCreate{
			CustomerName:  "Smoke Test",
			CustomerPhone: "+91-0000000000",
			CustomerEmail: "smoke@example.com",
			OrderType:     models.OrderTypeTakeout,
			Items: []models.OrderLineItem{
				{MenuItemID: s.itemID, Quantity: 2, SpecialInstructions: "Extra spicy"},
			},
		}).
		SetResult(&order).
		Post("/orders")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if order.TotalAmount != 360.0 {
		return fmt.Errorf("create order: total %.2f, want 360.00", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("create order: status %q, want pending", order.Status)
	}
	s.orderID = order.ID
	return nil
}

func (s *smoke) listOrders() error {
	var orders []models.Order
	resp, err := s.client.R().SetResult(&orders).Get("/orders")
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if len(orders) == 0 || orders[0].ID != s.orderID {
		return fmt.Errorf("list orders: newest order is not %s", s.orderID)
	}
	return nil
}

func (s *smoke) getOrder() error {
	var order models.Order
	resp, err := s.client.R().SetResult(&order).Get("/orders/" + s.orderID)
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	if order.ID != s.orderID {
		return fmt.Errorf("get order: got %s, want %s", order.ID, s.orderID)
	}
	return nil
}

func (s *smoke) deleteMenuItem() error {
	resp, err := s.client.R().Delete("/menu/" + s.itemID)
	if err := expectStatus(resp, err, http.StatusOK); err != nil {
		return err
	}
	resp, err = s.client.R().Delete("/menu/" + s.itemID)
	return expectStatus(resp, err, http.StatusNotFound)
}
