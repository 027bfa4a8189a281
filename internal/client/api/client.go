// Package api is the sole channel between the client application and the
// myFlix REST service. It translates domain operations into HTTP requests,
// attaches the session's bearer token, and normalizes every failure into a
// single typed error shape.
package api

import (
	"context"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
)

// TokenSource supplies the current bearer token for authorized requests.
// It returns "" when no session is live; requests then go out without an
// Authorization header and the server answers 401.
//
// session.Store satisfies this interface.
type TokenSource interface {
	Token() string
}

// LoginResult is the server's answer to a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client defines every operation the application performs against the
// myFlix API. Each method returns either a typed success value or a
// *Error; no other error shape crosses this boundary.
//
// All methods honor context cancellation.
type Client interface {
	// Register creates a new account. No session is required.
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	// Login exchanges credentials for a bearer token and user record.
	Login(ctx context.Context, creds models.Credentials) (LoginResult, error)

	// ListMovies returns the full catalog in server order.
	ListMovies(ctx context.Context) ([]models.Movie, error)
	// GetMovie returns a single movie by id.
	GetMovie(ctx context.Context, movieID string) (models.Movie, error)
	// GetDirector returns director details by name.
	GetDirector(ctx context.Context, name string) (models.Director, error)
	// GetGenre returns genre details by name.
	GetGenre(ctx context.Context, name string) (models.Genre, error)

	// GetUser returns the current server-side user record.
	GetUser(ctx context.Context, username string) (models.User, error)
	// EditUser applies a partial profile update; the server performs the
	// merge and returns the updated record.
	EditUser(ctx context.Context, username string, upd models.UserUpdate) (models.User, error)
	// DeleteUser removes the account. The server may answer with a
	// non-JSON body; that is still success.
	DeleteUser(ctx context.Context, username string) error

	// ListFavorites returns the ids of the user's favorite movies.
	ListFavorites(ctx context.Context, username string) ([]string, error)
	// AddFavorite marks a movie as favorite and returns the updated user.
	// Adding an id that is already present is not an error.
	AddFavorite(ctx context.Context, username, movieID string) (models.User, error)
	// RemoveFavorite unmarks a movie and returns the updated user.
	// Removing an absent id is not an error.
	RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error)
}
