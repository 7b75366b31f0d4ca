package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, ReportTitleKey, "Lotofácil: %d tickets of %d numbers")
	message.SetString(lang, ReportSeedKey, "Seed %s (%s, %s)")
	message.SetString(lang, ReportAveragesKey, "Averages: Even %.1f | Odd %.1f | Fibonacci %.1f | Frame %.1f")
	message.SetString(lang, ReportTicketKey, "Ticket #%d (sum %d)")
	message.SetString(lang, ReportTicketStatKey, "%d even | %d odd | %d Fibonacci | %d frame")
	message.SetString(lang, ReportLegendKey, "Legend: * Fibonacci, # frame")
	message.SetString(lang, EvaluationKey, "Ticket accepted by the balance criteria")
	message.SetString(lang, EvaluationRejectKey, "Ticket rejected: %s")

	message.SetString(lang, ErrorTicketSizeKey, "A ticket must have between 15 and 20 numbers (got %s)")
	message.SetString(lang, ErrorTicketNumbersKey, "Numbers must be distinct values between 1 and 25 (%s)")
	message.SetString(lang, ErrorSeedRangeKey, "Seed must be between 0 and 9223372036854775807")
	message.SetString(lang, ErrorSeedRequiredKey, "REPLAY mode requires a seed")
	message.SetString(lang, ErrorRollModeKey, "Invalid roll mode: use LIVE or REPLAY (%s)")
	message.SetString(lang, ErrorUnknownKey, "An unexpected error occurred")
}
