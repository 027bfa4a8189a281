package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/myflix-cli/internal/client/api"
	"github.com/dmitrijs2005/myflix-cli/internal/client/config"
	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
	"github.com/dmitrijs2005/myflix-cli/internal/client/session"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

// App wires the API client, the session store, and the interactive
// command handlers together. One App serves one terminal session.
type App struct {
	config *config.Config
	client api.Client
	store  session.Store
	log    logging.Logger
	reader *bufio.Reader

	// user is the in-memory copy of the server-side user record. It is
	// replaced wholesale by server responses and mirrored into the
	// session store; it is never edited field-by-field from local state.
	user     models.User
	loggedIn bool

	// movies is the last fetched catalog; index-based commands
	// ("show 2", "fav 1") resolve against it.
	movies []models.Movie
}

// NewApp builds an App from config: a file-backed session store and an
// HTTP API client reading its bearer token from that store.
func NewApp(c *config.Config, log logging.Logger) *App {
	if log == nil {
		log = logging.NewDiscardLogger()
	}

	store := session.NewFileStore(c.SessionFile)
	httpc := &http.Client{Timeout: c.RequestTimeout}
	client := api.NewHTTPClient(c.ServerBaseURL, store, httpc, log)

	return &App{
		config: c,
		client: client,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run restores any persisted session and enters the command loop,
// blocking until the user exits.
func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	a.Root(ctx)
}

// restoreSession picks up a session persisted by a previous run, so the
// user stays logged in across program restarts.
func (a *App) restoreSession(ctx context.Context) {
	s, ok := a.store.Load()
	if !ok {
		return
	}
	a.user = s.User
	a.loggedIn = true
	a.log.Info(ctx, "session restored", "user", s.User.Username)
	printlnFn(fmt.Sprintf("Welcome back, %s!", s.User.Username))
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// setUser replaces the in-memory user record with the server's version
// and mirrors it into the session store, keeping the persisted session
// in sync with what the server last returned.
func (a *App) setUser(u models.User) {
	a.user = u
	if tok := a.store.Token(); tok != "" {
		if err := a.store.Save(session.Session{Token: tok, User: u}); err != nil {
			a.log.Error(context.Background(), "session save failed", "err", err)
		}
	}
}

// dropSession clears both the persisted session and the in-memory state.
func (a *App) dropSession() error {
	err := a.store.Clear()
	a.user = models.User{}
	a.loggedIn = false
	a.movies = nil
	return err
}

// showError prints the short user-facing text of a normalized API error
// and leaves all prior state intact. Non-API errors (I/O from prompts)
// are shown as-is.
func (a *App) showError(err error) {
	if ae, ok := api.AsError(err); ok {
		printlnFn(ae.Message)
		return
	}
	printlnFn(fmt.Sprintf("Error: %v", err))
}
