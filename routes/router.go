package routes

import (
	"net/http"

	controller "github.com/ShriyanshSinghPatel/AngularForm/controllers"
	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	middleware "github.com/ShriyanshSinghPatel/AngularForm/middlewares"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const APIPrefix = "/api"

type Controllers struct {
	Restaurant *controller.RestaurantController
	Menu       *controller.MenuController
	Order      *controller.OrderController
	Health     *controller.HealthController
}

// NewRouter mounts every resource under /api, plus /health and /metrics at
// the root. CORS and request logging wrap the whole router so preflight and
// unmatched requests pass through them too.
func NewRouter(c Controllers, log logrus.FieldLogger, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	router.HandleFunc("/health", c.Health.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc(APIPrefix, c.Restaurant.Welcome).Methods(http.MethodGet)

	api := router.PathPrefix(APIPrefix).Subrouter()
	RestaurantRoutes(api, c.Restaurant)
	MenuRoutes(api, c.Menu)
	OrderRoutes(api, c.Order)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helper.WriteJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "route not found",
		})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helper.WriteJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{
			"success": false,
			"message": "method not allowed",
		})
	})

	return middleware.CORS(allowedOrigins)(middleware.Logging(log)(router))
}
