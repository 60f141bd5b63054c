package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/itemsource"
	"multiselect/internal/ui"
)

// ErrAborted is returned when the user quits without accepting a selection
var ErrAborted = errors.New("selection aborted")

// e2eEnv makes the binary announce readiness for the PTY test driver
const e2eEnv = "MULTISELECT_E2E_TEST"

type rootFlags struct {
	configPath     string
	format         string
	single         bool
	filter         string
	canAdd         bool
	removeSelected bool
	hideTags       bool
	editable       bool
	selected       []string
	uniqueKey      string
	displayKey     string
	logFile        string
}

var flags rootFlags

// rootCmd picks items from a list in the terminal
var rootCmd = &cobra.Command{
	Use:   "multiselect [items-file]",
	Short: "Pick one or more items from a list in the terminal",
	Long: `multiselect shows a dropdown of items read from a YAML, JSON or TOML
file, or from plain lines, and prints the keys of the chosen items one per
line when the selection is accepted.

Use "-" (the default) to read items from stdin. The list is drawn on stderr
so the output can be captured:

  keys=$(multiselect fruit.yaml --editable)`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelect,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	bindRootFlags(rootCmd.Flags(), &flags)
	rootCmd.AddCommand(configCmd)
}

func bindRootFlags(f *pflag.FlagSet, rf *rootFlags) {
	f.StringVarP(&rf.configPath, "config", "c", "", "config file (default is "+config.DefaultPath()+")")
	f.StringVar(&rf.format, "format", "auto", "item format: auto, yaml, json, toml or lines")
	f.BoolVar(&rf.single, "single", false, "select exactly one item and accept it immediately")
	f.StringVar(&rf.filter, "filter", "", "filter method: partial or full")
	f.BoolVar(&rf.canAdd, "can-add", false, "offer to add the search text as a new item")
	f.BoolVar(&rf.removeSelected, "remove-selected", false, "hide selected items from the list")
	f.BoolVar(&rf.hideTags, "hide-tags", false, "do not show selected items as tags")
	f.BoolVar(&rf.editable, "editable", false, "type into the search input to filter")
	f.StringSliceVar(&rf.selected, "selected", nil, "keys selected at start (comma separated)")
	f.StringVar(&rf.uniqueKey, "unique-key", "", "item field holding the key")
	f.StringVar(&rf.displayKey, "display-key", "", "item field holding the display text")
	f.StringVar(&rf.logFile, "log-file", "", "log file path")
}

// applyFlags overrides config values with flags the user set explicitly
func applyFlags(f *pflag.FlagSet, rf rootFlags, cfg *config.Config) {
	changed := f.Changed
	if changed("single") {
		cfg.Behavior.Single = rf.single
	}
	if changed("filter") {
		cfg.Behavior.Filter = rf.filter
	}
	if changed("can-add") {
		cfg.Behavior.CanAddItems = rf.canAdd
	}
	if changed("remove-selected") {
		cfg.Behavior.RemoveSelected = rf.removeSelected
	}
	if changed("hide-tags") {
		cfg.Layout.HideTags = rf.hideTags
	}
	if changed("editable") {
		cfg.Behavior.Editable = rf.editable
	}
	if changed("unique-key") {
		cfg.Fields.UniqueKey = rf.uniqueKey
	}
	if changed("display-key") {
		cfg.Fields.DisplayKey = rf.displayKey
	}
	if changed("log-file") {
		cfg.Logging.File = rf.logFile
	}
}

// setupLogging sends the standard logger to a rotating file. The returned
// closer must be called on exit.
func setupLogging(cfg config.LoggingConfig) io.Closer {
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	logFile := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
	}
	log.SetOutput(logFile)
	return logFile
}

// loadConfig reads the config file named by path, or the default file when
// path is empty. It returns the path that was read.
func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.NewConfigServiceAt(path).LoadFromPath(path)
		return cfg, path, err
	}
	cs := config.NewConfigService()
	cfg, err := cs.Load()
	return cfg, cs.Path(), err
}

// openSession loads the config, applies flags and starts logging. Events
// are announced only once the log file is open. The returned closer must be
// called after the bus is closed.
func openSession(bus eventbus.EventBus, f *pflag.FlagSet, rf rootFlags) (*config.Config, io.Closer, error) {
	cfg, path, err := loadConfig(rf.configPath)
	if err != nil {
		return nil, nil, err
	}
	applyFlags(f, rf, cfg)

	logCloser := setupLogging(cfg.Logging)
	logEvents(bus)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	return cfg, logCloser, nil
}

// logEvents records every domain event the session produces
func logEvents(bus eventbus.EventBus) {
	logEvent := func(e eventbus.DomainEvent) {
		log.Printf("%s: %+v", e.Type(), e)
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventItemAdded,
		eventbus.EventListToggled,
		eventbus.EventSelectorCleared,
		eventbus.EventSearchChanged,
		eventbus.EventItemsLoaded,
		eventbus.EventSelectionAccepted,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(et, logEvent)
	}
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
		}
	})
}

func runSelect(cmd *cobra.Command, args []string) error {
	// Nothing may reach the terminal before the log file is known
	log.SetOutput(io.Discard)

	bus := eventbus.New()
	var logCloser io.Closer = io.NopCloser(nil)
	defer func() {
		// Drain the bus while the log file is still open
		bus.Close()
		logCloser.Close()
	}()

	cfg, closer, err := openSession(bus, cmd.Flags(), flags)
	if err != nil {
		return err
	}
	logCloser = closer

	format, err := itemsource.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	source := itemsource.Stdin
	if len(args) == 1 {
		source = args[0]
	}

	opts := cfg.ToOptions()
	items, err := itemsource.LoadFile(source, format, opts.Fields)
	if err != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "loading items", Err: err})
		return err
	}
	bus.Publish(eventbus.ItemsLoadedEvent{Source: source, Count: len(items)})

	selected := itemsource.ResolveKeys(items, opts.Fields, flags.selected)

	model := ui.NewModel(bus, cfg, items, selected)
	if source != itemsource.Stdin {
		model.SetSource(source)
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if source == itemsource.Stdin {
		// stdin carried the items; keys come from the terminal
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if os.Getenv(e2eEnv) != "" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	log.Printf("Starting UI with %d items from %s", len(items), source)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	keys, accepted := model.Result()
	if !accepted {
		return ErrAborted
	}

	out := cmd.OutOrStdout()
	for _, key := range keys {
		fmt.Fprintln(out, domain.KeyString(key))
	}
	log.Printf("Accepted %d keys: %s", len(keys), strings.Join(keyStrings(keys), ","))
	return nil
}

func keyStrings(keys []domain.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = domain.KeyString(k)
	}
	return out
}
