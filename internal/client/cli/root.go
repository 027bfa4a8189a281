package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt suffix: the username when a session is
// active, empty otherwise.
func (a *App) getStatus() string {
	if a.loggedIn && a.user.Username != "" {
		return fmt.Sprintf("(%s)", a.user.Username)
	}
	return ""
}

// Root prints the welcome banner and runs the command loop on stdin
// until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to myFlix CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
