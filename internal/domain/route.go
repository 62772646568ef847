package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidRoute        = errors.New("invalid route")
	ErrEmptyRoute          = fmt.Errorf("%w: route must contain at least one moped", ErrInvalidRoute)
	ErrCardinalityMismatch = fmt.Errorf("%w: travel time count must be one less than moped count", ErrInvalidRoute)
)

// MaxTravelMinutes bounds a single travel segment to one day.
const MaxTravelMinutes = 24 * 60

var (
	vehicleTokenRe    = regexp.MustCompile(`^[SFMsfm]+$`)
	travelTimeTokenRe = regexp.MustCompile(`^\d+$`)
)

// A vehicle token contains characters outside S, F and M.
type InvalidVehicleError struct {
	Position int
	Token    string
}

func (e *InvalidVehicleError) Error() string {
	return fmt.Sprintf("invalid moped %d: %q may only contain S, F or M", e.Position+1, e.Token)
}

func (e *InvalidVehicleError) Unwrap() error { return ErrInvalidRoute }

// A travel time token is not an integer in [0, MaxTravelMinutes].
type InvalidTravelTimeError struct {
	Position int
	Token    string
}

func (e *InvalidTravelTimeError) Error() string {
	return fmt.Sprintf("invalid travel time %d: %q must be a whole number of minutes up to %d", e.Position+1, e.Token, MaxTravelMinutes)
}

func (e *InvalidTravelTimeError) Unwrap() error { return ErrInvalidRoute }

// The number of travel times does not match the number of vehicles.
type CardinalityError struct {
	Vehicles    int
	TravelTimes int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%v: got %d for %d mopeds, want %d", ErrCardinalityMismatch, e.TravelTimes, e.Vehicles, e.Vehicles-1)
}

func (e *CardinalityError) Unwrap() error { return ErrCardinalityMismatch }

// A validated route: vehicle task strings (upper-cased) and the travel
// time between each pair of consecutive vehicles.
//
// Invariant: len(TravelTimes) == len(Vehicles)-1 and len(Vehicles) >= 1.
type Route struct {
	Vehicles    []string
	TravelTimes []int
}

// ParseRoute validates comma separated user input.
// Empty travel time text means the route has no segments.
func ParseRoute(vehicles, travelTimes string) (Route, error) {
	if strings.TrimSpace(vehicles) == "" {
		return Route{}, ErrEmptyRoute
	}

	normalized, err := normalizeVehicles(splitTokens(vehicles))
	if err != nil {
		return Route{}, err
	}

	var travelTokens []string
	if strings.TrimSpace(travelTimes) != "" {
		travelTokens = splitTokens(travelTimes)
	}

	minutes := make([]int, 0, len(travelTokens))
	for i, tok := range travelTokens {
		if !travelTimeTokenRe.MatchString(tok) {
			return Route{}, &InvalidTravelTimeError{Position: i, Token: tok}
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n > MaxTravelMinutes {
			return Route{}, &InvalidTravelTimeError{Position: i, Token: tok}
		}
		minutes = append(minutes, n)
	}

	return newRoute(normalized, minutes)
}

// NewRoute validates already split input and normalizes vehicle tokens to upper case.
func NewRoute(vehicles []string, travelTimes []int) (Route, error) {
	if len(vehicles) == 0 {
		return Route{}, ErrEmptyRoute
	}

	normalized, err := normalizeVehicles(vehicles)
	if err != nil {
		return Route{}, err
	}

	for i, m := range travelTimes {
		if m < 0 || m > MaxTravelMinutes {
			return Route{}, &InvalidTravelTimeError{Position: i, Token: strconv.Itoa(m)}
		}
	}

	return newRoute(normalized, append([]int(nil), travelTimes...))
}

func newRoute(vehicles []string, travelTimes []int) (Route, error) {
	if len(travelTimes) != len(vehicles)-1 {
		return Route{}, &CardinalityError{Vehicles: len(vehicles), TravelTimes: len(travelTimes)}
	}
	if travelTimes == nil {
		travelTimes = []int{}
	}
	return Route{Vehicles: vehicles, TravelTimes: travelTimes}, nil
}

func normalizeVehicles(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for i, v := range tokens {
		tok := strings.TrimSpace(v)
		if !vehicleTokenRe.MatchString(tok) {
			return nil, &InvalidVehicleError{Position: i, Token: tok}
		}
		out = append(out, strings.ToUpper(tok))
	}
	return out, nil
}

// Return the route in its comma separated text form, as accepted by ParseRoute.
func (r Route) Text() (vehicles string, travelTimes string) {
	parts := make([]string, 0, len(r.TravelTimes))
	for _, m := range r.TravelTimes {
		parts = append(parts, strconv.Itoa(m))
	}
	return strings.Join(r.Vehicles, ","), strings.Join(parts, ",")
}

func splitTokens(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
