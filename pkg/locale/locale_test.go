package locale

import (
	"testing"
	"time"
)

func TestWeekdayLabelsDifferByLocale(t *testing.T) {
	en := WeekdayLabels("en", time.Monday)
	fr := WeekdayLabels("fr", time.Monday)

	if len(en) != 7 || len(fr) != 7 {
		t.Fatalf("expected 7 labels, got %d and %d", len(en), len(fr))
	}
	same := true
	for i := range en {
		if en[i] != fr[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("fr labels should differ from en: %v", fr)
	}
}

func TestWeekdayLabelsStartAtConfiguredWeekday(t *testing.T) {
	sun := WeekdayLabels("en", time.Sunday)
	if sun[0] != "Sun" {
		t.Fatalf("expected Sunday first, got %q", sun[0])
	}
	mon := WeekdayLabels("en", time.Monday)
	if mon[0] != "Mon" || mon[6] != "Sun" {
		t.Fatalf("expected Monday..Sunday, got %v", mon)
	}
}

func TestMonthYearLocalized(t *testing.T) {
	en := MonthYear(2021, time.January, "en")
	if en != "January 2021" {
		t.Fatalf("expected %q, got %q", "January 2021", en)
	}
	fr := MonthYear(2021, time.January, "fr")
	if fr == en {
		t.Fatalf("fr header should differ from en, got %q", fr)
	}
}

func TestFirstWeekdayPerLocale(t *testing.T) {
	cases := []struct {
		code string
		want time.Weekday
	}{
		{"en", time.Sunday},
		{"en-US", time.Sunday},
		{"en_US", time.Sunday},
		{"fr", time.Monday},
		{"de", time.Monday},
		{"ja", time.Sunday},
		{"", time.Monday},
		{"xx", time.Monday},
	}
	for _, tc := range cases {
		if got := FirstWeekday(tc.code); got != tc.want {
			t.Fatalf("FirstWeekday(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestResolveFallsBack(t *testing.T) {
	if Resolve("fr-CA") != Resolve("fr") {
		t.Fatal("regional code should fall back to language")
	}
	if Resolve("xx-YY") != Resolve(Default) {
		t.Fatal("unknown code should fall back to default")
	}
}

func TestWeekdayCellsAreTwoRunes(t *testing.T) {
	for _, code := range []string{"en", "fr", "de"} {
		for _, c := range WeekdayCells(code, time.Monday) {
			if n := len([]rune(c)); n != 2 {
				t.Fatalf("cell %q for %q has %d runes", c, code, n)
			}
		}
	}
}
