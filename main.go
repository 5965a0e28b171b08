package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"advselect/internal/catalog"
	"advselect/internal/config"
	"advselect/internal/engine"
	"advselect/internal/eventbus"
	"advselect/internal/logic"
	"advselect/internal/ui"
)

var version = "0.1.0"

// tuiViewportHeight is used until the first window size message arrives
const tuiViewportHeight = 20

type globalFlags struct {
	configPath  string
	logFile     string
	catalogPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "advselect",
		Short: "Virtualized, filterable, grouped multi-select for the terminal",
		Long: "advselect browses a grouped catalog of options with type-to-filter search and " +
			"multi-selection. Selected ids are printed to stdout on exit.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(flags.logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ./"+config.FileName+" or the user config)")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "advselect.log", "log file path, empty to discard logs")
	rootCmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "TOML catalog file, overrides the configured source")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRowsCmd(flags))
	rootCmd.AddCommand(newWindowCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

var logCloser io.Closer

// setupLogging points logrus at the log file. The TUI owns the terminal,
// so nothing is logged to stderr.
func setupLogging(path string) error {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if path == "" {
		logrus.SetOutput(io.Discard)
		return nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	if logCloser != nil {
		_ = logCloser.Close()
	}
	logCloser = logFile
	logrus.SetOutput(logFile)
	return nil
}

// loadConfig resolves the config file: the --config flag, then the file in
// the working directory, then the user config (or defaults)
func loadConfig(svc config.ConfigService, flags *globalFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return svc.LoadFromPath(flags.configPath)
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return svc.LoadFromPath(config.FileName)
	}
	return svc.Load()
}

// catalogSource picks the catalog to browse
func catalogSource(cfg *config.Config, flags *globalFlags) catalog.Source {
	if flags.catalogPath != "" {
		return catalog.Source{Kind: catalog.KindFile, Path: flags.catalogPath}
	}
	if cfg.Catalog.Source == config.SourceFile {
		return catalog.Source{Kind: catalog.KindFile, Path: cfg.Catalog.Path}
	}
	return catalog.Source{Kind: catalog.KindSynthetic, Size: cfg.Catalog.Size}
}

func runTUI(cmd *cobra.Command, flags *globalFlags) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	// Forward bus events to the UI in publication order. Subscribed before
	// the config loads so ConfigLoaded is not missed; the channel buffers
	// until the program exists.
	eventChan := make(chan eventbus.DomainEvent, 100)
	subscribeForwarding(bus, eventChan)

	cfg, err := loadConfig(config.NewConfigServiceWithBus(bus), flags)
	if err != nil {
		return err
	}

	// One terminal line per row; the viewport follows the terminal size
	opts := cfg.Options()
	opts.RowHeight = 1
	opts.ViewportHeight = tuiViewportHeight

	cache, err := engine.NewCache(engine.DefaultCacheSize)
	if err != nil {
		return err
	}
	session, err := engine.NewSession(opts, nil, cache)
	if err != nil {
		return err
	}

	catalogStore := logic.NewMemoryCatalogStore(nil)
	selectionStore := logic.NewMemorySelectionStore(nil, bus)

	model := ui.NewModel(cfg, session, catalogStore, selectionStore, bus)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	go func() {
		for e := range eventChan {
			p.Send(ui.EventMsg{Event: e})
		}
	}()

	catalogSvc := catalog.NewService(bus)
	src := catalogSource(cfg, flags)
	load := func() {
		if err := catalogSvc.Load(ctx, src); err != nil {
			logrus.WithError(err).Warn("catalog load not started")
		}
	}
	model.SetReload(load)
	load()

	logrus.WithField("source", src.String()).Info("starting UI")
	_, runErr := p.Run()
	cancel()
	catalogSvc.Wait()
	// Close returns once no handler is running, so nothing sends on
	// eventChan after this
	bus.Close()
	close(eventChan)

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		logrus.WithError(runErr).Error("error running program")
		return fmt.Errorf("error running program: %w", runErr)
	}

	// Print the selection so advselect can be used as a picker
	out := cmd.OutOrStdout()
	for _, id := range model.Selection() {
		fmt.Fprintln(out, id)
	}
	logrus.WithField("selected", len(model.Selection())).Info("UI exited normally")
	return nil
}

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogLoading,
	eventbus.EventCatalogLoaded,
	eventbus.EventSelectionChanged,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventError,
}

// subscribeForwarding copies UI events into out without blocking the bus
func subscribeForwarding(bus eventbus.EventBus, out chan<- eventbus.DomainEvent) {
	forward := func(e eventbus.DomainEvent) {
		select {
		case out <- e:
		default:
			logrus.WithField("event", e.Type()).Warn("event channel full, dropping event")
		}
	}
	for _, t := range forwardedEvents {
		bus.Subscribe(t, forward)
	}
}
