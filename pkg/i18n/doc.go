// Package i18n provides the message catalog used to render validation messages
// in several languages.
//
// A Translator holds a tree of templates per language loaded through a
// TranslationAdapter. Templates use bracketed placeholders such as
// `{PropertyName}` or `{MaxLength}`. Translation substitutes only the
// placeholders it receives a value for and leaves every other placeholder in
// the output untouched. Documentation relies on this: at documentation time the
// only known value is the member name, so bounds and comparison values stay as
// placeholders for the reader.
//
// # Architecture
//
// Translator delegates storage to a TranslationAdapter. Ready-made adapters
// cover in-memory maps (MapAdapter), single files (FileAdapter), directories
// (DirectoryAdapter) and any fs.FS, including embed.FS (EmbeddedFsAdapter).
// File content is decoded by a Parser: YAMLParser or JSONParser.
//
// Language negotiation helpers (Match, ParseAcceptLanguage) are built on
// golang.org/x/text/language, and Middleware stores the negotiated language in
// the request context for handlers to read back with GetLocale.
//
// # Usage
//
//	adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), "./messages/en.yaml")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("en", "validation.not_empty", "PropertyName", "Last Name")
//	// msg == "'Last Name' should not be empty."
//
// # Error Handling
//
// Loading failures are reported as package sentinels joined with the
// underlying cause, so callers can use errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseFile) {
//		// broken catalog file
//	}
package i18n
