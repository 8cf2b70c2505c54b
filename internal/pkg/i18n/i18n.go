// Package i18n resolves the request language (English or Bengali) and
// collapses bilingual *En/*Bn field pairs to a single value.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "neic_lang"
)

// Lang is a supported content language.
type Lang string

const (
	English Lang = "en"
	Bengali Lang = "bn"
)

// Default is used when nothing in the request selects a supported language.
const Default = English

var (
	supportedTags = []language.Tag{language.English, language.Bengali}
	supportedLang = []Lang{English, Bengali}
	matcher       = language.NewMatcher(supportedTags)
)

// Supported lists the languages in display order.
func Supported() []Lang {
	return append([]Lang(nil), supportedLang...)
}

// Tag returns the BCP 47 tag of the language.
func (l Lang) Tag() language.Tag {
	if l == Bengali {
		return language.Bengali
	}
	return language.English
}

// Other returns the language a switcher should offer.
func (l Lang) Other() Lang {
	if l == Bengali {
		return English
	}
	return Bengali
}

// Parse maps a raw value (e.g. "bn", "bn-BD", "en-US") to a supported language.
func Parse(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default, false
	}
	return match(tag)
}

func match(tags ...language.Tag) (Lang, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default, false
	}
	return supportedLang[index], true
}

// Resolve determines the language for a request: query parameter, then cookie, then Accept-Language.
// The bool reports whether the query parameter selected it and should be persisted.
func Resolve(r *http.Request) (Lang, bool) {
	if r == nil {
		return Default, false
	}

	if lang, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return lang, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := Parse(cookie.Value); ok {
			return lang, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if lang, ok := match(tags...); ok {
				return lang, false
			}
		}
	}

	return Default, false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, lang Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Pick returns the value for lang, falling back to English when the Bengali value is blank.
func Pick(lang Lang, en, bn string) string {
	if lang == Bengali && strings.TrimSpace(bn) != "" {
		return bn
	}
	return en
}
