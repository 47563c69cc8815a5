package msgnew

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one validated language argument of the form
// language[-region][.encoding]. Lang and Region keep the caller's spelling;
// validity is checked against the ISO 639 and ISO 3166 registries.
type Locale struct {
	Lang     string
	Region   string
	Encoding string

	sep string // separator between Lang and Region as given ("-" or "_")
	raw string
}

// String returns the raw token as given on the command line.
func (l Locale) String() string {
	return l.raw
}

// Base returns the token without its encoding suffix, i.e. the stem of the
// destination catalog file.
func (l Locale) Base() string {
	if l.Region == "" {
		return l.Lang
	}
	return l.Lang + l.sep + l.Region
}

// ParseLocale validates a single language token. The language sub-token is
// checked before the region, and the optional dot-separated encoding suffix
// must be a registered charset name.
func ParseLocale(token string) (Locale, error) {
	loc := Locale{raw: token}
	rest := token
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		loc.Encoding = rest[dot+1:]
		rest = rest[:dot]
		if err := ValidateEncoding(loc.Encoding); err != nil {
			return Locale{}, err
		}
	}
	lang, region, hasRegion := rest, "", false
	if sep := strings.IndexAny(rest, "-_"); sep >= 0 {
		lang, region, hasRegion = rest[:sep], rest[sep+1:], true
		loc.sep = rest[sep : sep+1]
	}
	if lang == "" {
		return Locale{}, &InvalidLanguageCodeError{Code: lang}
	}
	if _, err := language.ParseBase(lang); err != nil {
		return Locale{}, &InvalidLanguageCodeError{Code: lang}
	}
	loc.Lang = lang
	if hasRegion {
		if _, err := language.ParseRegion(region); err != nil {
			return Locale{}, &InvalidCountryCodeError{Code: region}
		}
		loc.Region = region
	}
	return loc, nil
}

// ParseLocales validates every language argument, in argument order, failing
// on the first invalid token. At least one argument is required.
func ParseLocales(args []string) ([]Locale, error) {
	if len(args) == 0 {
		return nil, &UsageError{Msg: "at least one language argument is required"}
	}
	locales := make([]Locale, 0, len(args))
	for _, arg := range args {
		loc, err := ParseLocale(arg)
		if err != nil {
			return nil, err
		}
		locales = append(locales, loc)
	}
	return locales, nil
}
