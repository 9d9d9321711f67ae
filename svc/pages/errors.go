package pages

import "errors"

var (
	ErrPageNotFound = errors.New("pages: page not found")
	ErrReadPage     = errors.New("pages: failed to read page")
)
