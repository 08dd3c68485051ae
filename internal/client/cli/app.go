package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/droplogistics/internal/client/client"
	"github.com/dmitrijs2005/droplogistics/internal/client/config"
	"github.com/dmitrijs2005/droplogistics/internal/client/services"
	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/i18n"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity check.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	repo   storage.Repository

	session   *services.SessionService
	favorites *services.FavoritesService
	history   *services.HistoryService
	language  *services.LanguageService
	tracking  *services.TrackingService

	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer

	mu   sync.RWMutex
	mode Mode
}

// NewApp opens the local database at c.DatabaseDSN, prepares the tracking
// client and wires the stores. A tracking client that cannot be created is
// logged and the app runs on the built-in catalog.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	var tc client.Client
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		log.Warn(ctx, "tracking server disabled", "endpoint", c.ServerEndpointAddr, "error", err)
	} else {
		tc = apiClient
	}

	a := newApp(c, log, repo, tc, os.Stdin, os.Stdout)
	a.closers = append(a.closers, repo)
	if tc != nil {
		a.closers = append(a.closers, tc)
	}
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, repo storage.Repository, tc client.Client, in io.Reader, out io.Writer) *App {
	a := &App{
		config:    c,
		log:       log,
		repo:      repo,
		session:   services.NewSessionService(repo, log, []byte(c.SecretKey), c.SessionTTL),
		favorites: services.NewFavoritesService(repo, log),
		history:   services.NewHistoryService(repo, log),
		language:  services.NewLanguageService(repo, log),
		tracking:  services.NewTrackingService(tc, log),
		reader:    bufio.NewReader(in),
		out:       out,
		mode:      ModeOffline,
	}
	if a.tracking.Online() {
		a.mode = ModeOnline
	}
	return a
}

// Load restores every store from local storage.
func (a *App) Load(ctx context.Context) {
	a.language.Load(ctx)
	a.session.Load(ctx)
	a.favorites.Load(ctx)
	a.history.Load(ctx)
}

// Run loads state, pings the server, starts the connectivity watcher and
// blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.Load(ctx)
	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.runREPL(ctx)
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tracking.SetOnline(mode == ModeOnline)
	if a.mode != mode {
		a.mode = mode
		a.log.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.tracking.Ping(pctx)
	cancel()

	if err != nil {
		a.log.Debug(ctx, "ping failed", "error", err)
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// app between online and offline mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// t is the translation table of the active language.
func (a *App) t() *i18n.Translations {
	return a.language.T()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " "
	}
	if a.Mode() == ModeOnline {
		s += a.t().Online
	} else {
		s += a.t().Offline
	}
	return fmt.Sprintf("(%s)", s)
}
