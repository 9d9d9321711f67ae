// Package webform composes the public routes of the form mailer.
package webform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/indishmarketer/simple-form-app/pkg/clientip"
	"github.com/indishmarketer/simple-form-app/pkg/logger"
	"github.com/indishmarketer/simple-form-app/pkg/requestid"
)

// PageServer serves the two static documents.
type PageServer interface {
	Form() http.HandlerFunc
	ThankYou() http.HandlerFunc
}

// Submitter handles form posts.
type Submitter interface {
	Handler() http.HandlerFunc
}

// RouterOptions configures the services mounted by Router.
// All fields except Logger are required.
type RouterOptions struct {
	Pages      PageServer
	Submission Submitter
	Health     http.Handler
	Logger     *slog.Logger
}

// Router creates the application router:
//
//	GET  /           form page
//	GET  /thank-you  thank-you page
//	GET  /healthz    liveness probe
//	POST /submit     submission handler
//
// HEAD is answered for every GET route.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		logger.RequestLogger(opts.Logger),
		middleware.Recoverer,
		middleware.GetHead,
	)

	r.Get("/", opts.Pages.Form())
	r.Get("/thank-you", opts.Pages.ThankYou())
	r.Method(http.MethodGet, "/healthz", opts.Health)
	r.Post("/submit", opts.Submission.Handler())

	return r
}
