package domain

import "errors"

var ErrPresetNotFound = errors.New("preset not found")

// A named example route that callers can calculate without typing it in.
type RoutePreset struct {
	ID    string
	Name  string
	Route Route
}
