// Package server initializes and runs the GadgetKeeper server: it opens the
// database, applies migrations, wires services and serves the HTTP API until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/archive"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/config"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/services"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/services/names"
	"github.com/gin-gonic/gin"
)

// seams for tests
var (
	sqlOpen     = sql.Open
	newArchiver = func(ctx context.Context, cfg *config.Config) (archive.Archiver, error) {
		return archive.NewS3Archiver(ctx, cfg)
	}
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	userService   *services.UserService
	gadgetService *services.GadgetService
}

// NewApp validates configuration, opens the database and builds services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	level, _ := logging.ParseLevel(c.LogLevel)
	logger := logging.NewJSONLogger(os.Stdout, level)
	gin.SetMode(ginMode(level))

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var arch archive.Archiver = archive.Nop{}
	if c.ArchiveEnabled() {
		arch, err = newArchiver(ctx, c)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("archive init error: %w", err)
		}
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, c, logger.With("module", "users"))
	gs := services.NewGadgetService(db, rm, names.NewAllocator(), arch, logger.With("module", "gadgets"))

	return &App{config: c, logger: logger, db: db, repomanager: rm, userService: us, gadgetService: gs}, nil
}

// ginMode keeps gin's route dump and debug warnings out of the JSON log
// unless debug logging was asked for.
func ginMode(level slog.Level) string {
	if level <= slog.LevelDebug {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandlers(app.userService, app.gadgetService,
		auth.NewGate([]byte(app.config.SecretKey)), app.logger, app.config.SecureCookies)

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, h)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run applies migrations and serves until ctx is canceled or a signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
	return nil
}
