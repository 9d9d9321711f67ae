// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap adapts them to http.HandlerFunc:
//
//	type SubmitRequest struct {
//		Name  string `form:"name" json:"name"`
//		Email string `form:"email" json:"email"`
//	}
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		if req.Name == "" {
//			return handler.Text(http.StatusBadRequest, "Name is required")
//		}
//		return handler.Redirect("/thank-you")
//	}
//
//	r.Post("/submit", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Form(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](handler.NewErrorHandler(log)),
//	))
//
// # Binders
//
// Binders run in order. A binder returning an error that wraps
// binder.ErrBinderNotApplicable is skipped; any other error goes to the
// ErrorHandler and the handler function is not called.
//
// # Responses
//
//	handler.Text(status, body)   // text/plain
//	handler.HTML(status, body)   // text/html, pre-rendered bytes
//	handler.Redirect(url)        // 302 Found
//
// # Errors
//
// Return or wrap an HTTPError to control the status code and the message
// shown to the client. Everything else becomes a 500 with a generic message.
package handler
