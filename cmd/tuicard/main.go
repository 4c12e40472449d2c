// Package main provides the CLI entrypoint for tuicard.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuicard/internal/config"
	"github.com/verte-zerg/tuicard/internal/logging"
	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/report"
	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/tui"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

const defaultLogLevel = "info"

var (
	studyShuffle bool
	studySeed    int64
	logLevel     string
	logFile      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tuicard [file]",
		Short: "TUI vocabulary flashcards",
		Long: `Study term/definition pairs as flashcards.

Without a file the word list is pasted into the app. With a file (or "-" for
stdin) the list is loaded up front. Lines look like "term - definition";
"Section N" lines group the entries that follow.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runStudyCmd,
	}

	rootCmd.Flags().BoolVar(&studyShuffle, "shuffle", false, "shuffle the deck before studying")
	rootCmd.Flags().Int64Var(&studySeed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path (default: XDG state dir)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runStudyCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "shuffle", &studyShuffle, fileCfg.Study.Shuffle)
	applyInt64Config(cmd, "seed", &studySeed, fileCfg.Study.Seed)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		Shuffle: studyShuffle,
		Seed:    studySeed,
	}
	if err := validateLogLevel(logLevel); err != nil {
		return err
	}
	if logFile == "" {
		logFile = config.DefaultLogPath()
	}

	logger, closer, err := logging.New(logging.Config{Level: logLevel, File: logFile})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	var last *session.Summary
	var s *session.Session
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithObserver(func(state session.State) {
			if state.Phase == session.PhaseComplete {
				summary := s.Summary()
				last = &summary
			}
		}),
	}
	opts, err = sessionSource(cmd, args, cfg, logger, opts)
	if err != nil {
		return err
	}
	s = session.New(opts...)

	program := tea.NewProgram(tui.NewModel(s, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if last != nil && isTerminal(os.Stdout) {
		if err := report.RenderSummary(cmd.OutOrStdout(), *last, report.Options{Width: terminalWidth()}); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// sessionSource adds the options selecting where the deck comes from: a
// pasted word list when no file is given, or the parsed file otherwise.
func sessionSource(cmd *cobra.Command, args []string, cfg model.Config, logger *slog.Logger, opts []session.Option) ([]session.Option, error) {
	var shuffler *wordlist.Shuffler
	if cfg.Shuffle {
		shuffler = wordlist.NewShuffler(cfg.Seed)
	}

	if len(args) == 0 {
		opts = append(opts, session.WithReset())
		if shuffler != nil {
			opts = append(opts, session.WithDeckOrder(shuffler.Shuffle))
		}
		return opts, nil
	}

	entries, err := wordlist.LoadEntries(args[0], cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, noEntriesError(args[0])
	}
	if shuffler != nil {
		entries = shuffler.Shuffle(entries)
	}
	logger.Info("word list loaded",
		"path", args[0],
		"words", len(entries),
		"sections", len(wordlist.Sections(entries)),
		"shuffle", cfg.Shuffle,
	)
	return append(opts, session.WithPreset(entries)), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a word list and print the entries",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	entries, err := wordlist.LoadEntries(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	width := 0
	if isTerminal(os.Stdout) {
		width = terminalWidth()
	}
	if err := report.RenderEntries(cmd.OutOrStdout(), entries, report.Options{Width: width}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(entries) == 0 {
		return noEntriesError(args[0])
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig writes the config template unless a config already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuicard configuration
# Uncomment a value to enable it. CLI flags override config values.

[study]
# shuffle = false         # Shuffle the deck before studying
# seed = 0                # Shuffle seed (0 = random)

[log]
# level = %q          # debug, info, warn or error
# file = %q
`,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func validateLogLevel(level string) error {
	if !logging.ValidLevel(level) {
		return fmt.Errorf("--log-level must be one of debug, info, warn, error")
	}
	return nil
}

func noEntriesError(path string) error {
	return fmt.Errorf("%s: %w\n%s", path, session.ErrNoEntries, session.NoEntriesMessage)
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
