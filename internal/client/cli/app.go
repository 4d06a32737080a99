package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/client"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/config"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/gadgetkeeper/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	gadgetService services.GadgetService
	session       *session.Session
	Mode          Mode
	reader        *bufio.Reader
	out           io.Writer
	closeDB       func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session store: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:        c,
		authService:   services.NewAuthService(apiClient, db),
		gadgetService: services.NewGadgetService(apiClient, db),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		closeDB:       db.Close,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// track derives the connectivity mode from the outcome of a server call.
func (a *App) track(err error) {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
	case errors.Is(err, services.ErrSessionExpired):
		a.session = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.Email + " " + a.session.Role + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores a cached session, pings the server and serves the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.authService.Close(ctx)
		if a.closeDB != nil {
			_ = a.closeDB()
		}
	}()

	fmt.Fprintln(a.out, "Welcome to gadgetkeeper CLI (type 'help' for commands)")

	s, err := a.authService.Restore(ctx)
	switch {
	case err == nil:
		a.session = s
		fmt.Fprintf(a.out, "Signed in as %s\n", s.Email)
	case errors.Is(err, services.ErrSessionExpired):
		fmt.Fprintln(a.out, err.Error())
	case !errors.Is(err, services.ErrNotSignedIn):
		log.Printf("error restoring session: %v", err)
	}

	a.track(a.authService.Ping(ctx))

	runREPL(ctx, a, a.getStatus, a.reader)
}
