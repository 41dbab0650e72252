package validoc

import (
	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/validator"
)

// MessageResolver returns the documented failure message of a constraint,
// or nil when the constraint has no static message.
type MessageResolver interface {
	Resolve(rule *validator.PropertyRule, c validator.Constraint) *string
}

// MessageResolverFunc adapts a function to MessageResolver.
type MessageResolverFunc func(rule *validator.PropertyRule, c validator.Constraint) *string

func (f MessageResolverFunc) Resolve(rule *validator.PropertyRule, c validator.Constraint) *string {
	return f(rule, c)
}

// CatalogResolver resolves messages from a catalog in one language.
//
// Only {PropertyName} is substituted, with the member display name. Every
// other placeholder ({MaxLength}, {ComparisonValue}, {TotalLength}, ...)
// stays in the message since no value exists at documentation time.
type CatalogResolver struct {
	catalog *i18n.Translator
	lang    string
}

// NewCatalogResolver creates a resolver over catalog. A nil catalog selects
// validator.DefaultMessages, an empty lang its default language.
func NewCatalogResolver(catalog *i18n.Translator, lang string) *CatalogResolver {
	if catalog == nil {
		catalog = validator.DefaultMessages()
	}
	if lang == "" {
		lang = catalog.DefaultLanguage()
	}
	return &CatalogResolver{catalog: catalog, lang: lang}
}

// Language returns the language messages are resolved in.
func (r *CatalogResolver) Language() string {
	return r.lang
}

// Resolve implements MessageResolver. Delegations and constraints without a
// known template resolve to nil; custom messages win over the catalog.
func (r *CatalogResolver) Resolve(rule *validator.PropertyRule, c validator.Constraint) *string {
	if _, ok := c.(validator.Delegation); ok {
		return nil
	}

	tmpl, ok := c.CustomMessage()
	if !ok {
		key := c.MessageKey()
		if key == "" {
			return nil
		}
		if tmpl, ok = r.catalog.Template(r.lang, key); !ok {
			return nil
		}
	}

	msg := i18n.Format(tmpl, map[string]string{"PropertyName": rule.DisplayName()})
	return &msg
}
