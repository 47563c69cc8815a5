package msgnew

import (
	"errors"
	"testing"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		token    string
		lang     string
		region   string
		encoding string
		base     string
	}{
		{"fr", "fr", "", "", "fr"},
		{"pt-BR", "pt", "BR", "", "pt-BR"},
		{"de_AT", "de", "AT", "", "de_AT"},
		{"fr-BE.ISO-8859-1", "fr", "BE", "ISO-8859-1", "fr-BE"},
		{"ja.UTF-8", "ja", "", "UTF-8", "ja"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			loc, err := ParseLocale(tt.token)
			if err != nil {
				t.Fatalf("ParseLocale(%q) = %v", tt.token, err)
			}
			if loc.Lang != tt.lang || loc.Region != tt.region || loc.Encoding != tt.encoding {
				t.Errorf("got %+v, want lang=%q region=%q encoding=%q", loc, tt.lang, tt.region, tt.encoding)
			}
			if loc.Base() != tt.base {
				t.Errorf("Base() = %q, want %q", loc.Base(), tt.base)
			}
			if loc.String() != tt.token {
				t.Errorf("String() = %q, want the raw token", loc.String())
			}
		})
	}
}

func TestParseLocale_invalidLanguage(t *testing.T) {
	for _, token := range []string{"zz", "foobar", "", "-FR"} {
		_, err := ParseLocale(token)
		var invalid *InvalidLanguageCodeError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseLocale(%q) = %v, want InvalidLanguageCodeError", token, err)
		}
	}
}

func TestParseLocale_invalidLanguageNamesCode(t *testing.T) {
	_, err := ParseLocale("zz")
	var invalid *InvalidLanguageCodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidLanguageCodeError, got %v", err)
	}
	if invalid.Code != "zz" {
		t.Errorf("Code = %q, want zz", invalid.Code)
	}
}

func TestParseLocale_invalidCountry(t *testing.T) {
	for _, token := range []string{"fr-A1", "de_Q9", "fr-"} {
		_, err := ParseLocale(token)
		var invalid *InvalidCountryCodeError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseLocale(%q) = %v, want InvalidCountryCodeError", token, err)
		}
	}
}

func TestParseLocale_languageCheckedBeforeCountry(t *testing.T) {
	// Both sub-tokens are invalid; the language error must win.
	_, err := ParseLocale("zz-A1")
	var invalid *InvalidLanguageCodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidLanguageCodeError, got %v", err)
	}
}

func TestParseLocale_invalidEncodingSuffix(t *testing.T) {
	_, err := ParseLocale("fr.NOT-A-CHARSET")
	var invalid *InvalidEncodingError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidEncodingError, got %v", err)
	}
	if invalid.Encoding != "NOT-A-CHARSET" {
		t.Errorf("Encoding = %q, want the offending name", invalid.Encoding)
	}
}

func TestParseLocales(t *testing.T) {
	locales, err := ParseLocales([]string{"fr", "pt-BR", "ja.UTF-8"})
	if err != nil {
		t.Fatal(err)
	}
	if len(locales) != 3 {
		t.Fatalf("got %d locales, want 3", len(locales))
	}
	if locales[1].Base() != "pt-BR" {
		t.Errorf("locales[1].Base() = %q, want pt-BR", locales[1].Base())
	}
}

func TestParseLocales_empty(t *testing.T) {
	_, err := ParseLocales(nil)
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("want UsageError, got %v", err)
	}
}

func TestParseLocales_failsOnFirstInvalid(t *testing.T) {
	_, err := ParseLocales([]string{"fr", "zz", "xx"})
	var invalid *InvalidLanguageCodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidLanguageCodeError, got %v", err)
	}
	if invalid.Code != "zz" {
		t.Errorf("Code = %q, want the first invalid token", invalid.Code)
	}
}
