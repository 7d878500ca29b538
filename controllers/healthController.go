package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	base
	store Pinger
}

func NewHealthController(store Pinger, log logrus.FieldLogger, timeout time.Duration) *HealthController {
	return &HealthController{base: base{log: log, timeout: timeout}, store: store}
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.context(r)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		c.log.WithError(err).Warn("health check failed")
		helper.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	helper.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
