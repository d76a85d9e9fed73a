package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rical/internal/browser"
	"rical/internal/config"
	"rical/internal/logging"
	"rical/internal/page"
	"rical/internal/ui"
)

// options holds the parsed CLI flags.
type options struct {
	configPath  string
	contentPath string
	logPath     string
	openCommand string
	initConfig  bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to config.toml (default: user config dir)")
	flag.StringVar(&opts.contentPath, "content", "", "YAML file replacing the built-in page copy")
	flag.StringVar(&opts.logPath, "log", "", "append JSON logs to this file")
	flag.StringVar(&opts.openCommand, "open", "", "command used to open links (default: platform launcher)")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write a default config file and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rical [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Shows the Rical landing page in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.initConfig {
		path, err := config.WriteDefault(opts.configPath)
		if err != nil {
			return fmt.Errorf("init config: %w", err)
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.contentPath != "" {
		cfg.Content.Path = opts.contentPath
	}
	if opts.logPath != "" {
		cfg.TUI.LogPath = opts.logPath
	}
	if opts.openCommand != "" {
		cfg.TUI.OpenCommand = opts.openCommand
	}

	logger, closeLog, err := logging.NewFile(cfg.TUI.LogPath, "tui")
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer func() { _ = closeLog() }()

	content, err := page.ResolveContent(cfg.Content.Path)
	if err != nil {
		return err
	}
	rec := &page.Recorder{}
	p, err := page.New(content, rec)
	if err != nil {
		return err
	}

	opener := &browser.SystemOpener{Command: cfg.TUI.OpenCommand}
	model := ui.NewAppModel(p, rec, opener, logger).AsTeaModel()
	logger.Info("starting", zap.String("version", page.Version))

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "rical: %v\n", err)
		os.Exit(1)
	}
}
