package submission

import (
	"errors"
	"net/http"

	"github.com/indishmarketer/simple-form-app/handler"
	"github.com/indishmarketer/simple-form-app/pkg/binder"
)

// Handler returns the POST /submit endpoint.
//
// A body that cannot be decoded is treated like one with missing fields.
// Delivery errors are logged by the Service and answered with a generic 500.
func (s *Service) Handler() http.HandlerFunc {
	errorHandler := handler.NewErrorHandler(s.log)

	return handler.Wrap(
		func(ctx handler.Context, req Submission) handler.Response {
			err := s.Submit(ctx, req)
			switch {
			case err == nil:
				return handler.Redirect(ThankYouPath)
			case errors.Is(err, ErrMissingFields):
				return handler.Text(http.StatusBadRequest, MsgMissingFields)
			default:
				return handler.Text(http.StatusInternalServerError, MsgFailure)
			}
		},
		handler.WithBinders[handler.Context, Submission](binder.Form(), binder.JSON()),
		handler.WithErrorHandler[handler.Context, Submission](func(ctx handler.Context, err error) {
			status, msg := http.StatusInternalServerError, MsgFailure
			if isBindError(err) {
				status, msg = http.StatusBadRequest, MsgMissingFields
			}
			errorHandler(ctx, handler.NewHTTPError(status, msg, err))
		}),
	)
}

func isBindError(err error) bool {
	return errors.Is(err, binder.ErrFailedToParseForm) || errors.Is(err, binder.ErrFailedToParseJSON)
}
