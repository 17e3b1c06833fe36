// Package locale resolves language codes into localized month and weekday
// labels for calendar rendering.
package locale

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

// Default is used when a code is empty or unknown.
const Default = "en"

var locales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en-us": monday.LocaleEnUS,
	"en-gb": monday.LocaleEnGB,
	"fr":    monday.LocaleFrFR,
	"de":    monday.LocaleDeDE,
	"es":    monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"nl":    monday.LocaleNlNL,
	"pt":    monday.LocalePtPT,
	"pt-br": monday.LocalePtBR,
	"ru":    monday.LocaleRuRU,
	"ja":    monday.LocaleJaJP,
	"zh":    monday.LocaleZhCN,
	"sv":    monday.LocaleSvSE,
	"pl":    monday.LocalePlPL,
	"tr":    monday.LocaleTrTR,
	"da":    monday.LocaleDaDK,
	"fi":    monday.LocaleFiFI,
	"nb":    monday.LocaleNbNO,
	"ko":    monday.LocaleKoKR,
}

// Locales where the civil week starts on Sunday. Everything else defaults
// to Monday.
var sundayFirst = map[string]bool{
	"en":    true,
	"en-us": true,
	"pt-br": true,
	"ja":    true,
	"zh":    true,
	"ko":    true,
}

// Resolve maps a language code (for example "fr", "pt-BR", "en_US") to a
// concrete locale, falling back to the language prefix and then to the
// default.
func Resolve(code string) monday.Locale {
	code = strings.ToLower(strings.ReplaceAll(code, "_", "-"))
	if loc, ok := locales[code]; ok {
		return loc
	}
	if lang, _, found := strings.Cut(code, "-"); found {
		if loc, ok := locales[lang]; ok {
			return loc
		}
	}
	return locales[Default]
}

// FirstWeekday returns the weekday a week starts on in the given locale.
func FirstWeekday(code string) time.Weekday {
	code = strings.ToLower(strings.ReplaceAll(code, "_", "-"))
	if sundayFirst[code] {
		return time.Sunday
	}
	if lang, _, found := strings.Cut(code, "-"); found && sundayFirst[lang] {
		return time.Sunday
	}
	return time.Monday
}

// MonthYear formats a localized "Month Year" header.
func MonthYear(year int, month time.Month, code string) string {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return monday.Format(t, "January 2006", Resolve(code))
}

// WeekdayLabels returns seven localized short weekday names starting at
// first.
func WeekdayLabels(code string, first time.Weekday) []string {
	loc := Resolve(code)
	labels := make([]string, 7)
	// 2001-01-01 was a Monday; offset from it to reach each weekday.
	base := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := (first + time.Weekday(i)) % 7
		off := (int(day) - 1 + 7) % 7
		labels[i] = monday.Format(base.AddDate(0, 0, off), "Mon", loc)
	}
	return labels
}

// WeekdayCells returns WeekdayLabels trimmed to two-character grid cells.
func WeekdayCells(code string, first time.Weekday) []string {
	labels := WeekdayLabels(code, first)
	cells := make([]string, len(labels))
	for i, l := range labels {
		cells[i] = cell2(l)
	}
	return cells
}

func cell2(s string) string {
	s = strings.TrimRight(s, ".")
	if utf8.RuneCountInString(s) <= 2 {
		for utf8.RuneCountInString(s) < 2 {
			s += " "
		}
		return s
	}
	runes := []rune(s)
	return string(runes[:2])
}
