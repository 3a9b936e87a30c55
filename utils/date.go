package utils

import (
	"strings"
	"time"
)

// DefaultLocale mirrors the browser default the shop used.
const DefaultLocale = "en-US"

// localeDateLayouts maps a BCP 47 tag to its short calendar date layout.
var localeDateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"sq-AL": "2.1.2006",
	"sq":    "2.1.2006",
	"de-DE": "2.1.2006",
	"it-IT": "2/1/2006",
	"fr-FR": "02/01/2006",
	"sv-SE": "2006-01-02",
}

// FormatLocaleDate renders the local calendar date of t for the given locale.
// Unknown locales fall back to en-US.
func FormatLocaleDate(t time.Time, locale string) string {
	layout, ok := localeDateLayouts[strings.TrimSpace(locale)]
	if !ok {
		layout = localeDateLayouts[DefaultLocale]
	}
	return t.Format(layout)
}

var pathUnsafe = strings.NewReplacer("/", "-", "\\", "-", ":", "-")

// ExportFileName builds "<prefix>_<date>.<ext>" with path separators in the
// date replaced by dashes.
func ExportFileName(prefix, date, ext string) string {
	return prefix + "_" + pathUnsafe.Replace(date) + "." + strings.TrimPrefix(ext, ".")
}
