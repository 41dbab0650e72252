package validator

import (
	"context"
	"embed"
	"sync"

	"github.com/dmitrymomot/validoc/pkg/i18n"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

var defaultMessages = sync.OnceValues(func() (*i18n.Translator, error) {
	return NewMessages(context.Background())
})

// DefaultMessages returns the embedded message catalog (English and German).
// It panics if the embedded files are malformed.
func DefaultMessages() *i18n.Translator {
	t, err := defaultMessages()
	if err != nil {
		panic("validator: embedded message catalog: " + err.Error())
	}
	return t
}

// NewMessages builds a fresh copy of the embedded catalog with overlays
// merged on top in order. Overlay templates replace embedded ones key by key
// and may add languages.
func NewMessages(ctx context.Context, overlays ...i18n.TranslationAdapter) (*i18n.Translator, error) {
	t, err := i18n.NewTranslator(ctx,
		i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), messageFiles, "messages"),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithNoLogging(),
	)
	if err != nil {
		return nil, err
	}
	for _, overlay := range overlays {
		if err := t.Merge(ctx, overlay); err != nil {
			return nil, err
		}
	}
	return t, nil
}
