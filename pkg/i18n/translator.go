package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/validoc/pkg/logger"
)

// Translator resolves message templates by language and dot-separated key.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	missing       slog.Leveler // nil: misses are not logged
	logger        *slog.Logger
	mu            sync.RWMutex
	adapter       TranslationAdapter
}

// NewTranslator creates a Translator and loads its catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "message catalog loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

// Merge overlays the catalog of adapter onto the loaded one. Keys present in
// both are replaced by the overlay, language by language.
func (t *Translator) Merge(ctx context.Context, adapter TranslationAdapter) error {
	if adapter == nil {
		return ErrNilAdapter
	}
	overlay, err := adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(overlay); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.translations == nil {
		t.translations = make(map[string]map[string]any, len(overlay))
	}
	for lang, tree := range overlay {
		if t.translations[lang] == nil {
			t.translations[lang] = make(map[string]any)
		}
		mergeTree(t.translations[lang], tree)
	}
	return nil
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcChild, srcIsMap := asStringMap(v)
		dstChild, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			mergeTree(dstChild, srcChild)
			dst[k] = dstChild
			continue
		}
		dst[k] = v
	}
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have templates.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// "validation.length.max" reads m["validation"]["length"]["max"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := asStringMap(next)
		if !ok {
			return nil, false
		}
		current = currentMap
	}

	return nil, false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// lookup finds the template for key in lang, falling back to the default
// language. Callers must hold the read lock.
func (t *Translator) lookup(lang, key string) (string, bool) {
	candidates := []string{lang}
	if lang != t.defaultLang {
		candidates = append(candidates, t.defaultLang)
	}

	for _, l := range candidates {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := t.getTranslation(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			t.reportMissing("translation is not a string", l, key, slog.String("type", fmt.Sprintf("%T", v)))
			return "", false
		}
	}
	return "", false
}

func (t *Translator) reportMissing(msg, lang, key string, attrs ...slog.Attr) {
	if t.missing == nil {
		return
	}
	attrs = append([]slog.Attr{slog.String("lang", lang), slog.String("key", key)}, attrs...)
	t.logger.LogAttrs(context.Background(), t.missing.Level(), msg, attrs...)
}

// Template returns the raw template for key without any substitution.
func (t *Translator) Template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lookup(lang, key)
}

// HasTranslation reports whether lang itself (not the default language)
// defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := t.getTranslation(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// T translates key for lang, substituting the placeholders named in args
// (key, value, key, value, ...). Placeholders without a value stay verbatim.
//
//	// "validation.length.max": "'{PropertyName}' must be less than {MaxLength} characters."
//	msg := translator.T("en", "validation.length.max", "PropertyName", "Last Name")
//	// msg == "'Last Name' must be less than {MaxLength} characters."
//
// When no template exists the key itself is returned if fallbackToKey is set,
// an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.lookup(lang, key)
	if !ok {
		t.reportMissing("translation not found", lang, key)
		if t.fallbackToKey {
			return Format(key, Params(args...))
		}
		return ""
	}
	return Format(tmpl, Params(args...))
}

// Td translates key with an explicit default template used when key is
// missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.lookup(lang, key)
	if !ok {
		t.reportMissing("translation not found", lang, key)
		tmpl = defaultValue
	}
	return Format(tmpl, Params(args...))
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// ExportJSON returns all templates for lang as a JSON document.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	bytes, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(bytes), nil
}

// Params builds a placeholder map from key/value pairs. A trailing key
// without value is ignored.
func Params(args ...string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Format substitutes `{name}` placeholders of tmpl with values from params.
// Placeholders missing from params are kept as they are.
func Format(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// Placeholders lists the distinct placeholder names of tmpl in order of first
// appearance.
func Placeholders(tmpl string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(tmpl, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
