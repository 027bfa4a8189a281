// Package devserver is an in-memory double of the myFlix REST API.
//
// It exists for two consumers: the API client's tests, which need a
// server with the real contract (including its quirks), and the
// devserver binary, which lets the CLI be exercised locally without the
// hosted service. It is not the real server and keeps no durable state.
//
// Wire fidelity notes:
//   - DELETE endpoints answer 200 with a plain-text body, like the
//     hosted API does.
//   - Registering a taken username answers 422 with {"message": ...}.
//   - Favorite add/remove are idempotent and return the full updated
//     user record.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

// DefaultTokenTTL is how long issued bearer tokens stay valid unless
// the caller configures otherwise.
const DefaultTokenTTL = time.Hour

type account struct {
	user models.User
	hash []byte
}

// Server holds the in-memory catalog and user base behind an http.Handler.
type Server struct {
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger

	mu     sync.Mutex
	users  map[string]*account
	movies []models.Movie
}

// New constructs a Server with the seeded movie catalog and no users.
// log may be nil.
func New(secret []byte, tokenTTL time.Duration, log logging.Logger) *Server {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	return &Server{
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log,
		users:    make(map[string]*account),
		movies:   seedMovies(),
	}
}

// Handler returns the routed API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)

	r.Post("/users", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.withBearerAuth)

		r.Get("/movies", s.handleListMovies)
		r.Get("/movies/director/{name}", s.handleGetDirector)
		r.Get("/movies/{movieID}", s.handleGetMovie)
		r.Get("/genre/{name}", s.handleGetGenre)

		r.Get("/users/{username}", s.handleGetUser)
		r.Put("/users/{username}", s.handleEditUser)
		r.Delete("/users/{username}", s.handleDeleteUser)

		r.Get("/users/{username}/movies", s.handleListFavorites)
		r.Post("/users/{username}/movies/{movieID}", s.handleAddFavorite)
		r.Delete("/users/{username}/movies/{movieID}", s.handleRemoveFavorite)
	})

	return r
}

// withBearerAuth rejects requests without a valid bearer token.
func (s *Server) withBearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			writeMessage(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := usernameFromToken(strings.TrimPrefix(header, prefix), s.secret); err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if reg.Username == "" || reg.Password == "" || reg.Email == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "Username, Password and Email are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[reg.Username]; exists {
		writeMessage(w, http.StatusUnprocessableEntity, "Username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	acc := &account{
		user: models.User{
			ID:             newID(),
			Username:       reg.Username,
			Email:          reg.Email,
			Birthday:       reg.Birthday,
			FavoriteMovies: []string{},
		},
		hash: hash,
	}
	s.users[reg.Username] = acc

	s.log.Info(r.Context(), "user registered", "username", reg.Username)
	writeJSON(w, http.StatusCreated, acc.user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	acc, ok := s.users[creds.Username]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(creds.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := generateToken(creds.Username, s.secret, s.tokenTTL)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  acc.user,
		"token": token,
	})
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	movies := make([]models.Movie, len(s.movies))
	copy(movies, s.movies)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, movies)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.ID == movieID {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "movie not found")
}

func (s *Server) handleGetDirector(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.Director.Name == name {
			writeJSON(w, http.StatusOK, m.Director)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "director not found")
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.Genre.Name == name {
			writeJSON(w, http.StatusOK, m.Genre)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "genre not found")
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[username]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) handleEditUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[username]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}

	// Partial merge; the server is the source of truth.
	if upd.Username != "" && upd.Username != username {
		if _, taken := s.users[upd.Username]; taken {
			writeMessage(w, http.StatusUnprocessableEntity, "Username already exists")
			return
		}
		delete(s.users, username)
		acc.user.Username = upd.Username
		s.users[upd.Username] = acc
	}
	if upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}
		acc.hash = hash
	}
	if upd.Email != "" {
		acc.user.Email = upd.Email
	}
	if upd.Birthday != nil {
		acc.user.Birthday = upd.Birthday
	}

	writeJSON(w, http.StatusOK, acc.user)
}

// handleDeleteUser mirrors the hosted API's quirk: the confirmation is
// plain text, not JSON.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	delete(s.users, username)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s was deleted.", username)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[username]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, acc.user.FavoriteMovies)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieID")

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[username]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	if !acc.user.HasFavorite(movieID) {
		acc.user.FavoriteMovies = append(acc.user.FavoriteMovies, movieID)
	}
	writeJSON(w, http.StatusOK, acc.user)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieID")

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[username]
	if !ok {
		writeMessage(w, http.StatusNotFound, "user not found")
		return
	}
	kept := acc.user.FavoriteMovies[:0]
	for _, id := range acc.user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	acc.user.FavoriteMovies = kept
	writeJSON(w, http.StatusOK, acc.user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
