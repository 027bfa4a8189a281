package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Movies(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Genre(ctx context.Context, args []string) error
	Director(ctx context.Context, args []string) error
	ToggleFavorite(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (m)ovies, show <n>, genre <n>, director <n>, " +
		"fav <n>, favorites, profile, update, deleteaccount, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the myFlix CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - movies | m      — list the catalog
//	  - show <n>        — synopsis of movie n from the last listing
//	  - genre <n>       — genre details for movie n
//	  - director <n>    — director details for movie n
//	  - fav <n>         — toggle movie n in the favorite set
//	  - favorites       — list favorite movies
//	  - profile         — show the profile (refreshed from the server)
//	  - update          — edit profile fields
//	  - deleteaccount   — delete the account and end the session
//	  - logout          — end the session
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// show their own messages. This keeps the loop resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("myflix %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "m", "movies":
			_ = a.Movies(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "genre":
			_ = a.Genre(ctx, args)

		case "director":
			_ = a.Director(ctx, args)

		case "fav":
			_ = a.ToggleFavorite(ctx, args)

		case "favorites":
			_ = a.Favorites(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
