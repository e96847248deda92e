package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/config"
	"github.com/scottbass3/keel/internal/contextstore"
	"github.com/scottbass3/keel/internal/logging"
	"github.com/scottbass3/keel/internal/resource"
	"github.com/scottbass3/keel/internal/tui"
)

type options struct {
	configPath string
	api        string
	node       string
	context    string
	debug      bool
	logFile    string
	logLevel   string
	timeout    time.Duration
	screen     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "keel",
		Short:         "Manage compose projects, images, networks and volumes of a container backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (defaults to $XDG_CONFIG_HOME/keel/config.yaml)")
	flags.StringVar(&opts.api, "api", "", "Backend API URL (e.g. https://backend.example.com/api)")
	flags.StringVar(&opts.node, "node", "", "Node id")
	flags.StringVar(&opts.context, "context", "", "Context name from the config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Request timeout (defaults to 15s)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Show backend requests in a panel")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file (defaults to $XDG_STATE_HOME/keel/keel.log)")
	cmd.Flags().StringVar(&opts.screen, "screen", "images", "Initial screen: "+strings.Join(resource.KindNames(), ", "))

	cmd.AddCommand(
		newListCommand(opts),
		newRemoveCommand(opts),
		newPruneCommand(opts),
		newContextsCommand(opts),
	)
	return cmd
}

// session is what every command needs once flags, environment and config
// file have been merged.
type session struct {
	path    string
	cfg     config.Config
	context config.Context
	timeout time.Duration
	logger  *log.Logger
}

func openSession(opts *options, logOut io.Writer) (*session, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	path := strings.TrimSpace(opts.configPath)
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Ensure(path)
	if err != nil {
		return nil, err
	}

	level := firstNonEmpty(opts.logLevel, config.LogLevelFromEnv(), cfg.Log.Level)
	s := &session{
		path:    path,
		cfg:     cfg,
		timeout: opts.timeout,
		logger:  logging.New(logOut, level),
	}
	if s.timeout <= 0 {
		s.timeout = cfg.Timeout
	}
	if s.timeout <= 0 {
		s.timeout = api.DefaultTimeout
	}

	sel := config.Selection{Context: opts.context, API: opts.api, Node: opts.node}.Merge(config.FromEnv())
	resolved, err := cfg.Resolve(sel)
	if err != nil {
		// Without an explicit context the TUI can still start and let the
		// user pick or create one.
		if strings.TrimSpace(sel.Context) != "" {
			return nil, err
		}
		s.logger.Debug("no backend resolved", "err", err)
	}
	s.context = resolved
	return s, nil
}

// client fails when no backend could be resolved.
func (s *session) client() (api.Client, error) {
	if strings.TrimSpace(s.context.API) == "" {
		return nil, fmt.Errorf("no backend configured: pass --api, set %s or add a context", config.EnvAPI)
	}
	return api.NewClientWithTimeout(s.context.API, s.timeout, logging.RequestLogger(s.logger, nil))
}

func runTUI(opts *options) error {
	screen, err := resource.ParseKind(opts.screen)
	if err != nil {
		return err
	}

	s, err := openSession(opts, io.Discard)
	if err != nil {
		return err
	}
	logPath := firstNonEmpty(opts.logFile, s.cfg.Log.File, config.DefaultLogPath())
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	s.logger = logging.New(logFile, firstNonEmpty(opts.logLevel, config.LogLevelFromEnv(), s.cfg.Log.Level))

	var logCh chan string
	if opts.debug {
		logCh = make(chan string, 256)
	}
	requestLog := logging.RequestLogger(s.logger, logCh)

	var client api.Client
	if s.context.API != "" {
		client, err = api.NewClientWithTimeout(s.context.API, s.timeout, requestLog)
		if err != nil {
			return err
		}
	}

	stored := contextstore.FromConfig(s.cfg.Contexts)
	contexts := make([]tui.ContextOption, 0, len(stored))
	for _, ctx := range stored {
		contexts = append(contexts, tui.ContextOption{Name: ctx.Name, API: ctx.API, Node: ctx.Node})
	}

	s.logger.Info("starting", "api", s.context.API, "node", s.context.Node, "context", s.context.Name)
	model := tui.NewModel(tui.Options{
		Client:     client,
		APIURL:     s.context.API,
		Node:       s.context.Node,
		Context:    s.context.Name,
		Contexts:   contexts,
		ConfigPath: s.path,
		Timeout:    s.timeout,
		RequestLog: requestLog,
		Logger:     s.logger,
		Debug:      opts.debug,
		LogCh:      logCh,
		Screen:     screen,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
