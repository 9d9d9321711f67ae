// Package validator provides composable validation rules.
//
// A Rule pairs a check with the error reported when it fails. Apply runs
// every rule and collects the failures into ValidationErrors:
//
//	err := validator.Apply(
//		validator.RequiredString("name", sub.Name),
//		validator.RequiredString("email", sub.Email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		// ...
//	}
package validator
