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

type MenuController struct {
	base
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService, log logrus.FieldLogger, timeout time.Duration) *MenuController {
	return &MenuController{base: base{log: log, timeout: timeout}, menu: menu}
}

// Get all menu items
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	items, err := c.menu.ListAll(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, items)
}

// Get menu items in one category
func (c *MenuController) GetMenuByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	items, err := c.menu.ListByCategory(ctx, mux.Vars(r)["category"])
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, items)
}

// Create a menu item
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var in models.MenuItemCreate
	if err := helper.DecodeJSON(w, r, &in); err != nil {
		c.fail(w, r, err)
		return
	}

	item, err := c.menu.Create(ctx, in)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, item)
}

// Replace a menu item
func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	var in models.MenuItemCreate
	if err := helper.DecodeJSON(w, r, &in); err != nil {
		c.fail(w, r, err)
		return
	}

	item, err := c.menu.Update(ctx, mux.Vars(r)["id"], in)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, item)
}

// Delete a menu item
func (c *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.menu.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		c.fail(w, r, err)
		return
	}
	helper.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Menu item deleted successfully",
	})
}
