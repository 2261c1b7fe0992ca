package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/services"
	"github.com/dmitrijs2005/shortener-client/internal/logging"
)

type App struct {
	authService services.AuthService
	linkService services.LinkService
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	loggedIn atomic.Bool
	email    atomic.Value // string
}

func NewApp(as services.AuthService, ls services.LinkService, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		authService: as,
		linkService: ls,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.email.Store("")
	return a
}

// Run restores a stored session, if any, and runs the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to the shortener CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// SessionEnded is the callback for services.NewSessionTerminator.
func (a *App) SessionEnded() {
	if a.loggedIn.Swap(false) {
		fmt.Fprintln(a.out, "Your session has expired, please log in again")
	}
	a.email.Store("")
}

func (a *App) restoreSession(ctx context.Context) error {
	s, err := a.authService.Session(ctx)
	if err != nil {
		return err
	}
	if s.Active() {
		a.loggedIn.Store(true)
		a.email.Store(s.Email())
		a.log.Debug(ctx, "restored stored session")
		if s.Claims != nil && s.Claims.Expired(time.Now()) {
			a.log.Debug(ctx, "stored access token expired, it will be renewed on first use")
		}
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn.Load()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	if email, _ := a.email.Load().(string); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return "(logged in)"
}

// report prints err for the user and logs it.
func (a *App) report(ctx context.Context, action string, err error) {
	a.log.Debug(ctx, action+" failed", "error", err)
	fmt.Fprintf(a.out, "Error %s: %s\n", action, client.UserMessage(err))
}
