package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

// Match picks the supported language closest to requested ("de-AT" matches
// "de"). It returns fallback when requested is empty, malformed or has no
// reasonable match.
func Match(requested string, supported []string, fallback string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" || len(supported) == 0 {
		return fallback
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return fallback
	}
	return matchTags([]language.Tag{tag}, supported, fallback)
}

// ParseAcceptLanguage negotiates an Accept-Language header (RFC 7231) against
// the supported languages, honouring quality values.
func ParseAcceptLanguage(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	return matchTags(tags, supported, fallback)
}

func matchTags(requested []language.Tag, supported []string, fallback string) string {
	supportedTags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		supportedTags = append(supportedTags, tag)
		names = append(names, s)
	}
	if len(supportedTags) == 0 {
		return fallback
	}

	// The matcher always answers with some supported tag, even with confidence No.
	_, idx, confidence := language.NewMatcher(supportedTags).Match(requested...)
	if confidence < language.High || idx < 0 || idx >= len(names) {
		return fallback
	}
	return names[idx]
}
