package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
	"github.com/dmitrijs2005/myflix-cli/internal/client/session"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword

// Register prompts for the registration fields and attempts to create a
// new account. On success the user still has to log in; registration
// does not start a session.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	birthday, err := getOptionalText(a.reader, "Enter birthday, YYYY-MM-DD", os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{Username: username, Password: password, Email: email}
	if birthday != "" {
		t, err := parseBirthday(birthday)
		if err != nil {
			printlnFn("Birthday must look like 1990-12-31.")
			return err
		}
		reg.Birthday = &t
	}

	u, err := a.client.Register(ctx, reg)
	if err != nil {
		a.showError(err)
		return err
	}

	a.log.Info(ctx, "registered", "user", u.Username)
	printlnFn(fmt.Sprintf("Account %s created, you can log in now.", u.Username))
	return nil
}

// Login prompts for credentials, authenticates, and persists the
// returned token and user record as the new session. A failed login
// leaves any existing session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.showError(err)
		return err
	}

	if err := a.store.Save(session.Session{Token: res.Token, User: res.User}); err != nil {
		a.log.Error(ctx, "session save failed", "err", err)
		return err
	}
	a.user = res.User
	a.loggedIn = true

	a.log.Info(ctx, "logged in", "user", res.User.Username)
	printlnFn(fmt.Sprintf("Hello, %s!", res.User.Username))
	return nil
}

// Logout clears the persisted session and the in-memory state. It never
// talks to the server; the token simply stops being used.
func (a *App) Logout(ctx context.Context) error {
	if err := a.dropSession(); err != nil {
		a.log.Error(ctx, "session clear failed", "err", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
