// Package binder decodes HTTP request bodies into Go structs.
//
// Two binders are provided:
//   - Form handles application/x-www-form-urlencoded and multipart/form-data
//     using `form` struct tags
//   - JSON handles application/json using the standard `json` tags and
//     ignores unknown fields
//
// Each binder returns an error wrapping ErrBinderNotApplicable when the
// request content type belongs to a different format, so binders can be
// chained and the first applicable one wins:
//
//	type Submission struct {
//	    Name  string `form:"name" json:"name"`
//	    Email string `form:"email" json:"email"`
//	}
//
//	http.HandleFunc("/submit", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, Submission](binder.Form(), binder.JSON()),
//	))
//
// # Errors
//
//   - ErrBinderNotApplicable: content type does not match the binder
//   - ErrMissingContentType, ErrUnsupportedMediaType: joined with the above
//   - ErrFailedToParseForm, ErrFailedToParseJSON: body could not be decoded
package binder
