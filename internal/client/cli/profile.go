package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
)

const birthdayLayout = "2006-01-02"

func parseBirthday(s string) (time.Time, error) {
	return time.Parse(birthdayLayout, s)
}

// Profile fetches the current user record from the server, replaces the
// local copy, and prints it. The server is the source of truth; the
// cached record is never shown without a refresh.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.client.GetUser(ctx, a.user.Username)
	if err != nil {
		a.showError(err)
		return err
	}
	a.setUser(u)

	printlnFn("Username: " + u.Username)
	printlnFn("Email:    " + u.Email)
	if u.Birthday != nil {
		printlnFn("Birthday: " + u.Birthday.Format(birthdayLayout))
	}
	printlnFn(fmt.Sprintf("Favorites: %d", len(u.FavoriteMovies)))
	return nil
}

// UpdateProfile walks the user through an all-optional form and sends
// only the answered fields; the server merges them into the record.
func (a *App) UpdateProfile(ctx context.Context) error {
	username, err := getOptionalText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getOptionalText(a.reader, "New password", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getOptionalText(a.reader, "New email", os.Stdout)
	if err != nil {
		return err
	}

	birthday, err := getOptionalText(a.reader, "New birthday, YYYY-MM-DD", os.Stdout)
	if err != nil {
		return err
	}

	upd := models.UserUpdate{Username: username, Password: password, Email: email}
	if birthday != "" {
		t, err := parseBirthday(birthday)
		if err != nil {
			printlnFn("Birthday must look like 1990-12-31.")
			return err
		}
		upd.Birthday = &t
	}

	if upd == (models.UserUpdate{}) {
		printlnFn("Nothing to update.")
		return nil
	}

	u, err := a.client.EditUser(ctx, a.user.Username, upd)
	if err != nil {
		a.showError(err)
		return err
	}
	a.setUser(u)

	printlnFn("Profile updated.")
	return nil
}

// DeleteAccount asks for confirmation, deletes the account on the
// server, and ends the local session. Anything but an exact "yes"
// aborts.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? This cannot be undone. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.client.DeleteUser(ctx, a.user.Username); err != nil {
		a.showError(err)
		return err
	}

	if err := a.dropSession(); err != nil {
		a.log.Error(ctx, "session clear failed", "err", err)
	}
	printlnFn("Account deleted. Goodbye.")
	return nil
}
