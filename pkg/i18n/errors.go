package i18n

import (
	"errors"
	"fmt"
)

// Context cancellation errors are kept separate from parse/read failures so
// callers can tell a timeout from a broken catalog.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLStructure = errors.New("invalid YAML catalog structure")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")
	ErrUnsupportedFileType  = errors.New("unsupported translation file type")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrNoTranslationFiles        = errors.New("no valid translation files found")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
