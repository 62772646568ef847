// Package locale renders user-facing route texts in the supported languages.
//
// English is the default and fallback; Dutch is the only translation. Keys
// are the English format strings themselves.
package locale

import (
	"errors"
	"fmt"
	"moped-route-service/internal/domain"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgTask         = "Moped %s: Performs %s task(s) (%s minutes)"
	msgTravel       = "Travel from moped %s to moped %s (%s minutes)"
	msgNoTasks      = "No tasks assigned."
	msgTotal        = "Total Time: %s minutes"
	msgWorkerTotal  = "%s: %s minutes"
	msgEmptyRoute   = "Enter at least one moped."
	msgBadVehicle   = "Invalid moped \"%s\" at position %s. Use only S, F or M."
	msgBadTravel    = "Invalid distance \"%s\" at position %s. Use whole minutes up to %s."
	msgCardinality  = "The number of distances should be one less than the number of mopeds."
	msgTaskSwap     = "Swap"
	msgTaskFix      = "Fix"
	msgTaskRepair   = "Mechanic repair"
	msgInvalidInput = "Invalid input."
)

var dutch = map[string]string{
	msgTask:         "Moped %s: voert %s taak/taken uit (%s minuten)",
	msgTravel:       "Reis van moped %s naar moped %s (%s minuten)",
	msgNoTasks:      "Geen taken toegewezen.",
	msgTotal:        "Totale tijd: %s minuten",
	msgWorkerTotal:  "%s: %s minuten",
	msgEmptyRoute:   "Voer minstens één moped in.",
	msgBadVehicle:   "Ongeldige moped \"%s\" op positie %s. Gebruik alleen S, F of M.",
	msgBadTravel:    "Ongeldige afstand \"%s\" op positie %s. Gebruik hele minuten tot en met %s.",
	msgCardinality:  "Het aantal afstanden moet één minder zijn dan het aantal mopeds.",
	msgTaskSwap:     "Wissel",
	msgTaskFix:      "Reparatie",
	msgTaskRepair:   "Monteursreparatie",
	msgInvalidInput: "Ongeldige invoer.",
}

var (
	Supported = []language.Tag{language.English, language.Dutch}

	matcher = language.NewMatcher(Supported)
	cat     = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range dutch {
		if err := b.SetString(language.Dutch, key, msg); err != nil {
			panic(fmt.Sprintf("locale: register %q: %v", key, err))
		}
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("locale: register %q: %v", key, err))
		}
	}
	return b
}

// Match picks a supported language. Each preference may be a single tag
// ("nl") or an Accept-Language header; earlier preferences win. Unknown or
// empty preferences fall back to English.
func Match(prefs ...string) language.Tag {
	_, idx := language.MatchStrings(matcher, prefs...)
	if idx < 0 || idx >= len(Supported) {
		return language.English
	}
	return Supported[idx]
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// DescribeItem renders one breakdown item. Vehicle positions are shown 1-based.
func DescribeItem(p *message.Printer, item domain.BreakdownItem) string {
	switch item.Kind {
	case domain.BreakdownTask:
		return p.Sprintf(msgTask, plain(item.Vehicle+1), plain(item.Count), plain(item.Minutes))
	case domain.BreakdownTravel:
		return p.Sprintf(msgTravel, plain(item.Vehicle+1), plain(item.Vehicle+2), plain(item.Minutes))
	default:
		return p.Sprintf(msgNoTasks)
	}
}

func Total(p *message.Printer, minutes int) string {
	return p.Sprintf(msgTotal, plain(minutes))
}

func WorkerTotal(p *message.Printer, wb domain.WorkerBreakdown) string {
	return p.Sprintf(msgWorkerTotal, wb.Worker.Name, plain(wb.Minutes))
}

func TaskLabel(p *message.Printer, code domain.TaskCode) string {
	switch code {
	case domain.TaskSwap:
		return p.Sprintf(msgTaskSwap)
	case domain.TaskFix:
		return p.Sprintf(msgTaskFix)
	case domain.TaskRepair:
		return p.Sprintf(msgTaskRepair)
	}
	return code.String()
}

// DescribeError renders a route validation error for the user.
// Errors that are not route validation errors get a generic message.
func DescribeError(p *message.Printer, err error) string {
	var (
		ve *domain.InvalidVehicleError
		te *domain.InvalidTravelTimeError
	)

	switch {
	case errors.As(err, &ve):
		return p.Sprintf(msgBadVehicle, ve.Token, plain(ve.Position+1))
	case errors.As(err, &te):
		return p.Sprintf(msgBadTravel, te.Token, plain(te.Position+1), plain(domain.MaxTravelMinutes))
	case errors.Is(err, domain.ErrCardinalityMismatch):
		return p.Sprintf(msgCardinality)
	case errors.Is(err, domain.ErrEmptyRoute):
		return p.Sprintf(msgEmptyRoute)
	}
	return p.Sprintf(msgInvalidInput)
}

// plain formats n without locale digit grouping.
func plain(n int) string { return strconv.Itoa(n) }
