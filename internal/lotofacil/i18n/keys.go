// Package i18n renders localized Lotofácil reports and error messages.
//
// Catalog entries are registered with golang.org/x/text/message in init, one
// file per locale. Brazilian Portuguese is the default locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Message keys.
const (
	ReportTitleKey      = "lotofacil.report.title"
	ReportSeedKey       = "lotofacil.report.seed"
	ReportAveragesKey   = "lotofacil.report.averages"
	ReportTicketKey     = "lotofacil.report.ticket"
	ReportTicketStatKey = "lotofacil.report.ticket_stats"
	ReportLegendKey     = "lotofacil.report.legend"
	EvaluationKey       = "lotofacil.evaluation"
	EvaluationRejectKey = "lotofacil.evaluation.rejected"

	ErrorTicketSizeKey    = "lotofacil.error.ticket_size"
	ErrorTicketNumbersKey = "lotofacil.error.ticket_numbers"
	ErrorSeedRangeKey     = "lotofacil.error.seed_range"
	ErrorSeedRequiredKey  = "lotofacil.error.seed_required"
	ErrorRollModeKey      = "lotofacil.error.roll_mode"
	ErrorUnknownKey       = "lotofacil.error.unknown"
)

// DefaultLocale is used when no supported locale matches.
var DefaultLocale = language.BrazilianPortuguese

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// ResolveLocale picks the closest supported locale for a BCP 47 tag or an
// Accept-Language style list.
func ResolveLocale(value string) language.Tag {
	if strings.TrimSpace(value) == "" {
		return DefaultLocale
	}
	_, index := language.MatchStrings(matcher, value)
	return supported[index]
}
