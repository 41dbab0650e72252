package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validoc/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
		_, ok := i18n.LocaleFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("set", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "de")
		assert.Equal(t, "de", i18n.GetLocale(ctx))
		locale, ok := i18n.LocaleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "de", locale)
	})

	t.Run("empty locale keeps the parent value", func(t *testing.T) {
		ctx := i18n.SetLocale(i18n.SetLocale(context.Background(), "de"), "")
		assert.Equal(t, "de", i18n.GetLocale(ctx))
	})
}

func TestMiddleware(t *testing.T) {
	var got string
	handler := i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "de")))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}),
	)

	t.Run("query parameter wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		req.Header.Set("Accept-Language", "en")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "de", got)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de-CH"})
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "de", got)
	})

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr;q=1.0, de;q=0.7")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "de", got)
	})

	t.Run("unsupported falls back to default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, i18n.DefaultLanguage, got)
	})
}

func TestDefaultLangExtractor_Unrestricted(t *testing.T) {
	extract := i18n.DefaultLangExtractor(i18n.WithQueryParamName("l"), i18n.WithCookieName("c"))

	req := httptest.NewRequest(http.MethodGet, "/?l=PT-br", nil)
	assert.Equal(t, "pt-br", extract(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA;q=0.9, en")
	assert.Equal(t, "fr-ca", extract(req))
}
