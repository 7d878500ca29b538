package routes

import (
	"net/http"

	controller "github.com/ShriyanshSinghPatel/AngularForm/controllers"

	"github.com/gorilla/mux"
)

func RestaurantRoutes(router *mux.Router, c *controller.RestaurantController) {
	router.HandleFunc("/", c.Welcome).Methods(http.MethodGet)
	router.HandleFunc("/restaurant-info", c.GetRestaurantInfo).Methods(http.MethodGet)
}
