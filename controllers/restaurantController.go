package controller

import (
	"net/http"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
)

type RestaurantController struct {
	info models.RestaurantInfo
}

func NewRestaurantController(info models.RestaurantInfo) *RestaurantController {
	return &RestaurantController{info: info}
}

// Welcome answers the API root.
func (c *RestaurantController) Welcome(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to " + c.info.Name + " API",
	})
}

func (c *RestaurantController) GetRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, c.info)
}
