package i18n

import (
	platformerrors "github.com/louisbranch/lotofacil/internal/platform/errors"
	"golang.org/x/text/message"
)

// Metadata keys read by the error templates.
const (
	MetadataValue = "value"
)

var errorKeys = map[platformerrors.Code]string{
	platformerrors.CodeTicketSizeOutOfRange: ErrorTicketSizeKey,
	platformerrors.CodeTicketNumbersInvalid: ErrorTicketNumbersKey,
	platformerrors.CodeSeedOutOfRange:       ErrorSeedRangeKey,
	platformerrors.CodeSeedRequired:         ErrorSeedRequiredKey,
	platformerrors.CodeRollModeInvalid:      ErrorRollModeKey,
}

// keysWithValue take MetadataValue as their single argument.
var keysWithValue = map[string]bool{
	ErrorTicketSizeKey:    true,
	ErrorTicketNumbersKey: true,
	ErrorRollModeKey:      true,
}

// Localizer renders platform error codes from the message catalogs.
type Localizer struct{}

// Localize implements errors.Localizer.
func (Localizer) Localize(locale string, code platformerrors.Code, metadata map[string]string) (string, string) {
	tag := ResolveLocale(locale)
	printer := message.NewPrinter(tag)

	key, ok := errorKeys[code]
	if !ok {
		return tag.String(), printer.Sprintf(ErrorUnknownKey)
	}
	if keysWithValue[key] {
		return tag.String(), printer.Sprintf(key, metadata[MetadataValue])
	}
	return tag.String(), printer.Sprintf(key)
}
