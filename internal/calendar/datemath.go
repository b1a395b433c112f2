package calendar

import (
	"sync"
	"time"

	"alcyxob/training-client/internal/domain"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/pt"
	"golang.org/x/text/language"
)

// DaysPerWeek is the width of one calendar page.
const DaysPerWeek = 7

// DefaultLanguage is used when no language is configured or the configured one is unsupported.
const DefaultLanguage = "es"

// supported languages; index order matches translators.
var (
	supportedTags = []language.Tag{language.Spanish, language.English, language.Portuguese, language.French, language.German}
	translators   = []func() locales.Translator{es.New, en.New, pt.New, fr.New, de.New}
	matcher       = language.NewMatcher(supportedTags)
)

// Regions whose weeks start on Sunday or Saturday (CLDR weekData); everything else starts on Monday.
var (
	sundayFirst = map[string]bool{
		"AG": true, "AS": true, "BD": true, "BR": true, "BS": true, "BT": true, "BW": true, "BZ": true,
		"CA": true, "CN": true, "CO": true, "DM": true, "DO": true, "ET": true, "GT": true, "GU": true,
		"HK": true, "HN": true, "ID": true, "IL": true, "IN": true, "JM": true, "JP": true, "KE": true,
		"KH": true, "KR": true, "LA": true, "MH": true, "MM": true, "MO": true, "MT": true, "MX": true,
		"MZ": true, "NI": true, "NP": true, "PA": true, "PE": true, "PH": true, "PK": true, "PR": true,
		"PT": true, "PY": true, "SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
		"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true, "ZA": true, "ZW": true,
	}
	saturdayFirst = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true, "IQ": true, "IR": true,
		"JO": true, "KW": true, "LY": true, "OM": true, "QA": true, "SD": true, "SY": true,
	}
)

// Locale bundles what the calendar needs from a language setting.
type Locale struct {
	Tag          language.Tag
	FirstWeekday time.Weekday
	translator   locales.Translator
}

// ResolveLocale parses a BCP 47 tag ("es", "en-US", "pt-BR"...). Unknown or invalid
// tags fall back to DefaultLanguage.
func ResolveLocale(lang string) Locale {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.MustParse(DefaultLanguage)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		idx = 0
		tag = supportedTags[0]
	}
	region, _ := tag.Region()
	return Locale{
		Tag:          tag,
		FirstWeekday: firstWeekday(region.String()),
		translator:   translators[idx](),
	}
}

func firstWeekday(region string) time.Weekday {
	switch {
	case sundayFirst[region]:
		return time.Sunday
	case saturdayFirst[region]:
		return time.Saturday
	default:
		return time.Monday
	}
}

// WeekdayLabels returns abbreviated weekday names starting at the locale's first weekday.
func (l Locale) WeekdayLabels() []string {
	return l.WeekdayLabelsFrom(l.FirstWeekday)
}

// WeekdayLabelsFrom returns abbreviated weekday names starting at first. Windows built
// under a previous language keep their alignment, so labels follow the rendered week.
func (l Locale) WeekdayLabelsFrom(first time.Weekday) []string {
	names := l.translator.WeekdaysAbbreviated()
	labels := make([]string, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		labels = append(labels, names[(int(first)+i)%DaysPerWeek])
	}
	return labels
}

// MonthLabel returns the wide month name ("marzo", "March").
func (l Locale) MonthLabel(m time.Month) string {
	return l.translator.MonthWide(m)
}

// LocaleSource yields the active locale. It is consulted once per window operation.
type LocaleSource interface {
	CurrentLocale() Locale
}

// LanguageSetting is a LocaleSource backed by a mutable language code.
type LanguageSetting struct {
	mu     sync.RWMutex
	locale Locale
}

func NewLanguageSetting(lang string) *LanguageSetting {
	return &LanguageSetting{locale: ResolveLocale(lang)}
}

func (s *LanguageSetting) Set(lang string) {
	l := ResolveLocale(lang)
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
}

func (s *LanguageSetting) CurrentLocale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// WeekStart returns the first day of the week containing d.
func WeekStart(d domain.DayBucket, first time.Weekday) domain.DayBucket {
	offset := (int(d.Weekday()) - int(first) + DaysPerWeek) % DaysPerWeek
	return d.AddDays(-offset)
}

// WeekOf returns the seven days of the week containing d.
func WeekOf(d domain.DayBucket, first time.Weekday) []domain.DayBucket {
	return DaysFrom(WeekStart(d, first), DaysPerWeek)
}

// DaysFrom returns n consecutive days starting at start.
func DaysFrom(start domain.DayBucket, n int) []domain.DayBucket {
	days := make([]domain.DayBucket, n)
	t := start.Time()
	for i := range days {
		days[i] = domain.DayOf(t.AddDate(0, 0, i))
	}
	return days
}

// MonthTarget resolves the date to jump to when the user picks a month (1-12) in the header
// carousel. Precedence: explicit date, then today when the month is the current real month and
// the selection is in the current real year, then day 1 of the month.
func MonthTarget(month time.Month, explicit *domain.DayBucket, selected, today domain.DayBucket) domain.DayBucket {
	if explicit != nil {
		return *explicit
	}
	sameYear := selected.Year == today.Year
	if month == today.Month && sameYear {
		return today
	}
	year := selected.Year
	if sameYear {
		year = today.Year
	}
	return domain.DayBucket{Year: year, Month: month, Day: 1}
}
