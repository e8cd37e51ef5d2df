package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/config"
	"github.com/alexisbeaulieu97/tskpay/internal/logger"
	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
	"github.com/alexisbeaulieu97/tskpay/internal/storage"
)

// appContext holds what every command builds from the configuration file.
type appContext struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       storage.KeyValueStore
	Preferences *preferences.Provider

	closers []io.Closer
}

// logSink picks where log entries go once the configuration is known.
// A nil closer means the writer is not owned by the command.
type logSink func(cfg *config.Config) (io.Writer, io.Closer, error)

// writerSink logs to w, typically the command's stderr.
func writerSink(w io.Writer) logSink {
	return func(*config.Config) (io.Writer, io.Closer, error) {
		return w, nil, nil
	}
}

// fileSink logs to the configured log file. The dashboard uses it because
// the terminal belongs to the renderer.
func fileSink(cfg *config.Config) (io.Writer, io.Closer, error) {
	path := cfg.LogFile()
	if path == "" {
		return io.Discard, nil, nil
	}
	file, err := logger.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return file, file, nil
}

// newAppContext loads the configuration, builds the logger and opens the
// preference store.
func newAppContext(flags *rootFlags, sink logSink, presenter preferences.Presenter) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	logOut, logCloser, err := sink(cfg)
	if err != nil {
		return nil, err
	}
	var closers []io.Closer
	if logCloser != nil {
		closers = append(closers, logCloser)
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        logOut,
	})
	if err != nil {
		closeAll(closers)
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := storage.Open(cfg.Preferences.Backend, cfg.PreferencesPath())
	if err != nil {
		closeAll(closers)
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	closers = append(closers, store)

	provider := preferences.NewProvider(store, presenter,
		preferences.WithKey(cfg.Preferences.Key),
		preferences.WithLogger(log),
	)

	return &appContext{
		Config:      cfg,
		Logger:      log,
		Store:       store,
		Preferences: provider,
		closers:     closers,
	}, nil
}

// dataset loads the configured dataset, or the built-in sample when no
// data path is set.
func (a *appContext) dataset() (*billing.Dataset, error) {
	path := a.Config.DataPath()
	if path == "" {
		a.Logger.Debug("using built-in sample dataset")
		return billing.Sample(), nil
	}
	return billing.Load(path)
}

// Close releases the store and the log file, in reverse order of opening.
func (a *appContext) Close() error {
	return closeAll(a.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
