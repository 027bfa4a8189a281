package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/myflix-cli/internal/client/api"
	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
	"github.com/dmitrijs2005/myflix-cli/internal/client/session"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

// fakeClient is a scriptable api.Client. Each field holds the canned
// response for the matching method; calls records the method names in
// order.
type fakeClient struct {
	calls []string

	registerUser models.User
	registerErr  error

	loginResult api.LoginResult
	loginErr    error

	movies    []models.Movie
	moviesErr error

	movie    models.Movie
	movieErr error

	director    models.Director
	directorErr error
	directorArg string

	genre    models.Genre
	genreErr error
	genreArg string

	user    models.User
	userErr error

	editedUser models.User
	editErr    error
	editUpd    models.UserUpdate

	deleteErr error

	favoriteIDs  []string
	favoritesErr error

	favUser    models.User
	favErr     error
	favMovieID string
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (models.User, error) {
	f.calls = append(f.calls, "Register")
	return f.registerUser, f.registerErr
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (api.LoginResult, error) {
	f.calls = append(f.calls, "Login")
	return f.loginResult, f.loginErr
}

func (f *fakeClient) ListMovies(context.Context) ([]models.Movie, error) {
	f.calls = append(f.calls, "ListMovies")
	return f.movies, f.moviesErr
}

func (f *fakeClient) GetMovie(_ context.Context, movieID string) (models.Movie, error) {
	f.calls = append(f.calls, "GetMovie")
	return f.movie, f.movieErr
}

func (f *fakeClient) GetDirector(_ context.Context, name string) (models.Director, error) {
	f.calls = append(f.calls, "GetDirector")
	f.directorArg = name
	return f.director, f.directorErr
}

func (f *fakeClient) GetGenre(_ context.Context, name string) (models.Genre, error) {
	f.calls = append(f.calls, "GetGenre")
	f.genreArg = name
	return f.genre, f.genreErr
}

func (f *fakeClient) GetUser(_ context.Context, username string) (models.User, error) {
	f.calls = append(f.calls, "GetUser")
	return f.user, f.userErr
}

func (f *fakeClient) EditUser(_ context.Context, username string, upd models.UserUpdate) (models.User, error) {
	f.calls = append(f.calls, "EditUser")
	f.editUpd = upd
	return f.editedUser, f.editErr
}

func (f *fakeClient) DeleteUser(_ context.Context, username string) error {
	f.calls = append(f.calls, "DeleteUser")
	return f.deleteErr
}

func (f *fakeClient) ListFavorites(_ context.Context, username string) ([]string, error) {
	f.calls = append(f.calls, "ListFavorites")
	return f.favoriteIDs, f.favoritesErr
}

func (f *fakeClient) AddFavorite(_ context.Context, username, movieID string) (models.User, error) {
	f.calls = append(f.calls, "AddFavorite")
	f.favMovieID = movieID
	return f.favUser, f.favErr
}

func (f *fakeClient) RemoveFavorite(_ context.Context, username, movieID string) (models.User, error) {
	f.calls = append(f.calls, "RemoveFavorite")
	f.favMovieID = movieID
	return f.favUser, f.favErr
}

// newTestApp builds an App over a fakeClient and an in-memory session
// store, with all output discarded.
func newTestApp(t *testing.T, f *fakeClient) (*App, *session.MemStore) {
	t.Helper()
	store := session.NewMemStore()
	return &App{
		client: f,
		store:  store,
		log:    logging.NewDiscardLogger(),
		reader: bufio.NewReader(strings.NewReader("")),
	}, store
}

// silenceOutput replaces printlnFn for the duration of a test and
// collects the printed lines.
func silenceOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origOT, origGP := getSimpleText, getOptionalText, getPassword
	i := 0
	next := func() string {
		if i >= len(answers) {
			return ""
		}
		s := answers[i]
		i++
		return s
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getOptionalText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getOptionalText = origOT
		getPassword = origGP
	})
}

func TestRestoreSession(t *testing.T) {
	_ = silenceOutput(t)

	f := &fakeClient{}
	a, store := newTestApp(t, f)
	require.NoError(t, store.Save(session.Session{
		Token: "tok",
		User:  models.User{Username: "alice"},
	}))

	a.restoreSession(context.Background())

	require.True(t, a.isLoggedIn())
	require.Equal(t, "alice", a.user.Username)
}

func TestRestoreSession_NoSession(t *testing.T) {
	_ = silenceOutput(t)

	f := &fakeClient{}
	a, _ := newTestApp(t, f)

	a.restoreSession(context.Background())

	require.False(t, a.isLoggedIn())
}

func TestSetUser_ResavesSessionWithSameToken(t *testing.T) {
	f := &fakeClient{}
	a, store := newTestApp(t, f)
	require.NoError(t, store.Save(session.Session{
		Token: "tok",
		User:  models.User{Username: "alice"},
	}))

	a.setUser(models.User{Username: "alice", FavoriteMovies: []string{"m1"}})

	s, ok := store.Load()
	require.True(t, ok)
	require.Equal(t, "tok", s.Token)
	require.Equal(t, []string{"m1"}, s.User.FavoriteMovies)
}

func TestGetStatus(t *testing.T) {
	a := &App{}
	require.Equal(t, "", a.getStatus())

	a.user = models.User{Username: "alice"}
	a.loggedIn = true
	require.Equal(t, "(alice)", a.getStatus())
}
