package routes

import (
	"net/http"

	controller "github.com/ShriyanshSinghPatel/AngularForm/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, c *controller.MenuController) {

	router.HandleFunc("/menu", c.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/menu", c.CreateMenuItem).Methods(http.MethodPost)

	router.HandleFunc("/menu/category/{category}", c.GetMenuByCategory).Methods(http.MethodGet)

	router.HandleFunc("/menu/{id}", c.UpdateMenuItem).Methods(http.MethodPut)
	router.HandleFunc("/menu/{id}", c.DeleteMenuItem).Methods(http.MethodDelete)
}
