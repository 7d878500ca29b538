package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/sirupsen/logrus"
)

// base carries what every resource controller needs: a logger and the
// per-request store deadline.
type base struct {
	log     logrus.FieldLogger
	timeout time.Duration
}

func (b base) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), b.timeout)
}

// fail writes err to the client. Server-side failures are logged here, once.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	if helper.StatusFor(err) == http.StatusInternalServerError {
		b.log.WithFields(logrus.Fields{
			"request_id": helper.RequestID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
	}
	helper.WriteError(w, err)
}
