package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validoc/pkg/config"
	"github.com/dmitrymomot/validoc/pkg/docserver"
	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/logger"
	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg      Config
	newReg   func() (*validoc.Registry, error)
	registry *validoc.Registry
	catalog  *i18n.Translator
	logger   *slog.Logger

	envFile string
}

func newRootCmd(newReg func() (*validoc.Registry, error)) *cobra.Command {
	a := &app{cfg: defaultConfig(), newReg: newReg}

	root := &cobra.Command{
		Use:   "validoc",
		Short: "Document validation rules",
		Long: `Validoc lists the rules declared by validators: the constraint kind, its
severity, the cascade behaviour of the member and the failure message.

Delegations to nested validators can be expanded with --deep.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file first")
	flags.StringVar(&a.cfg.Language, "lang", a.cfg.Language, "message language (env VALIDOC_LANG)")
	flags.StringVar(&a.cfg.Catalog, "catalog", "", "merge message templates from this YAML/JSON file or directory (env VALIDOC_CATALOG)")
	flags.IntVar(&a.cfg.MaxDepth, "max-depth", a.cfg.MaxDepth, "maximum delegation depth (env VALIDOC_MAX_DEPTH)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error (env VALIDOC_LOG_LEVEL)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: text, json (env VALIDOC_LOG_FORMAT, default by VALIDOC_ENV)")

	root.AddCommand(
		newListCmd(a),
		newDocCmd(a),
		newServeCmd(a),
		newCatalogCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the environment configuration, applies explicitly set flags on
// top of it and builds the logger, catalog and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	flagged := a.cfg
	var cfg Config
	if err := config.ForceReload(&cfg); err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = flagged.Language
	}
	if flags.Changed("catalog") {
		cfg.Catalog = flagged.Catalog
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = flagged.MaxDepth
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagged.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagged.LogFormat
	}
	if flags.Changed("addr") {
		cfg.HTTP.Addr = flagged.HTTP.Addr
	}

	if cfg.MaxDepth < 1 {
		return errors.New("max depth must be at least 1")
	}

	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(cfg.Env, "validoc"),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatText && format != logger.FormatJSON {
			return fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, logger.FormatText, logger.FormatJSON)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	opts = append(opts, logger.WithContextExtractors(
		docserver.RequestIDExtractor(),
		logger.StringExtractor("lang", i18n.LocaleFromContext),
	))
	a.logger = logger.New(opts...)

	catalog, err := loadCatalog(cmd.Context(), cfg.Catalog)
	if err != nil {
		return err
	}
	a.catalog = catalog
	cfg.Language = i18n.Match(cfg.Language, a.catalog.SupportedLanguages(), a.catalog.DefaultLanguage())
	a.cfg = cfg

	reg, err := a.newReg()
	if err != nil {
		return fmt.Errorf("building validator registry: %w", err)
	}
	a.registry = reg
	return nil
}

func (a *app) builder() *validoc.Builder {
	return validoc.NewBuilder(
		validoc.WithCatalog(a.catalog),
		validoc.WithLanguage(a.cfg.Language),
		validoc.WithMaxDepth(a.cfg.MaxDepth),
		validoc.WithLogger(a.logger),
	)
}

// loadCatalog returns the embedded message catalog, with the templates at
// path merged on top when one is given.
func loadCatalog(ctx context.Context, path string) (*i18n.Translator, error) {
	if path == "" {
		return validator.DefaultMessages(), nil
	}
	overlay, err := i18n.NewPathAdapter(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	catalog, err := validator.NewMessages(ctx, overlay)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return catalog, nil
}
