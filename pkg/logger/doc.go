// Package logger builds the *slog.Logger instances used by the validoc
// binaries and shared helpers for consistent attribute naming.
//
// New applies functional options (format, level, output, static attributes,
// context extractors). Extractors add attributes pulled from context.Context to
// every record, for example the request id set by the documentation server or
// the negotiated language (StringExtractor).
//
// Library packages never create loggers themselves: they accept a
// *slog.Logger through an option and default to a discard logger.
//
//	log := logger.New(
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(logger.Component("cli")),
//	)
//	log.Info("documented validator", logger.Validator("CustomerValidator"), logger.Depth(2))
//
// Helpers such as Error and Errors return an empty attribute for nil errors so
// they can be passed unconditionally.
package logger
