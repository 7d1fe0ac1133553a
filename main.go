package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"maidadmin/internal/api"
	"maidadmin/internal/auth"
	"maidadmin/internal/config"
	"maidadmin/internal/dataprovider"
	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
	"maidadmin/internal/i18n"
	"maidadmin/internal/logging"
	"maidadmin/internal/prefs"
	"maidadmin/internal/search"
	"maidadmin/internal/ui"
)

// sessionCheckInterval is how often the TUI checks for an expired token
const sessionCheckInterval = 30 * time.Second

var (
	configPath string
	apiURL     string
	verbose    bool
)

// app holds the services shared by the TUI and the subcommands
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  prefs.Store
	prefs  *prefs.Preferences
	bus    eventbus.EventBus
	client *api.Client
	data   *dataprovider.Provider
	auth   *auth.Provider

	stopActivity func()
}

func newApp() (*app, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(config.LogPath(), verbose)
	if err != nil {
		return nil, err
	}

	store, err := prefs.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		prefs:  prefs.New(store),
		bus:    eventbus.New(logger),
	}
	a.client = api.New(cfg.APIBase(),
		api.WithTimeout(cfg.Timeout()),
		api.WithLogger(logger),
		api.WithToken(func() string { return a.auth.Token() }),
	)
	a.data = dataprovider.New(a.client, logger)
	a.auth = auth.New(a.client, a.prefs, a.bus, logger)
	a.stopActivity = eventbus.LogActivity(a.bus, logger)

	logger.Debug("started",
		zap.String("config", svc.Path()),
		zap.String("api", cfg.APIBase()),
		zap.String("db", cfg.DatabasePath()))
	return a, nil
}

func (a *app) Close() {
	a.stopActivity()
	a.bus.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("close preferences", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func (a *app) timeoutContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout())
}

// printer returns a printer for the stored language preference
func (a *app) printer() *message.Printer {
	return i18n.Printer(a.prefs.Language(domain.DefaultLanguage))
}

var rootCmd = &cobra.Command{
	Use:   "maidadmin",
	Short: "Administration console for the MAID platform",
	Long: `maidadmin manages users, projects and datasets of a MAID backend.

Run without arguments to start the interactive console.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return runTUI(cmd.Context(), a)
	},
}

func runTUI(ctx context.Context, a *app) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewModel(ui.Deps{
		Config:  a.cfg,
		Bus:     a.bus,
		Search:  search.NewStoreWithBus(a.bus),
		Prefs:   a.prefs,
		Session: a.auth,
		Data:    a.data,
		Admin:   a.client,
		Logger:  a.logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward events to the UI
	forwardEvent := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventLoggedIn,
		eventbus.EventLoggedOut,
		eventbus.EventUserBlocked,
		eventbus.EventUserUnblocked,
		eventbus.EventRecordDeleted,
		eventbus.EventError,
	} {
		unsubscribe := a.bus.Subscribe(t, forwardEvent)
		defer unsubscribe()
	}

	go a.auth.Watch(ctx, sessionCheckInterval, nil)

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend URL, overrides the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, listCmd,
		blockCmd, unblockCmd, newAdminCmd, deleteCmd, themeCmd, langCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
