package validator

import "strings"

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// SingleLine fails when value contains a CR or LF.
func SingleLine(field, value string) Rule {
	return Rule{
		Check: func() bool { return !strings.ContainsAny(value, "\r\n") },
		Error: ValidationError{Field: field, Message: "must not contain line breaks"},
	}
}
