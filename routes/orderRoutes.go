package routes

import (
	"net/http"

	controller "github.com/ShriyanshSinghPatel/AngularForm/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, c *controller.OrderController) {

	router.HandleFunc("/orders", c.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", c.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/{id}", c.GetOrder).Methods(http.MethodGet)
}
