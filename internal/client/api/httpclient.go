package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/myflix-cli/internal/client/models"
	"github.com/dmitrijs2005/myflix-cli/internal/logging"
)

// genericTransportMessage is the only text shown to the user for failures
// that are not the user's fault. Raw server internals stay in the log.
const genericTransportMessage = "Something went wrong talking to the server. Please try again later."

// maxErrorBody bounds how much of a failed response is read for
// classification and logging.
const maxErrorBody = 64 << 10

// HTTPClient is the REST implementation of Client.
//
// Every authorized request reads the current token from the TokenSource
// at call time, so a login or logout between two calls is always
// reflected on the next request. Register and Login send no
// Authorization header.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient for the given base URL.
// httpc may be nil, in which case a default client with no timeout is
// used (a hung request hangs the triggering action; callers can pass a
// client with a timeout if they want one). log may be nil to discard
// diagnostics.
func NewHTTPClient(baseURL string, tokens TokenSource, httpc *http.Client, log logging.Logger) *HTTPClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpc,
		tokens:  tokens,
		log:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/users", false, reg, &u)
	return u, err
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/login", false, creds, &res)
	return res, err
}

func (c *HTTPClient) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var ms []models.Movie
	err := c.do(ctx, http.MethodGet, "/movies", true, nil, &ms)
	return ms, err
}

func (c *HTTPClient) GetMovie(ctx context.Context, movieID string) (models.Movie, error) {
	var m models.Movie
	err := c.do(ctx, http.MethodGet, "/movies/"+url.PathEscape(movieID), true, nil, &m)
	return m, err
}

func (c *HTTPClient) GetDirector(ctx context.Context, name string) (models.Director, error) {
	var d models.Director
	err := c.do(ctx, http.MethodGet, "/movies/director/"+url.PathEscape(name), true, nil, &d)
	return d, err
}

func (c *HTTPClient) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	var g models.Genre
	err := c.do(ctx, http.MethodGet, "/genre/"+url.PathEscape(name), true, nil, &g)
	return g, err
}

func (c *HTTPClient) GetUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), true, nil, &u)
	return u, err
}

func (c *HTTPClient) EditUser(ctx context.Context, username string, upd models.UserUpdate) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(username), true, upd, &u)
	return u, err
}

// DeleteUser passes nil for the response value: the known server quirk
// of answering deletions with a plain-text 200 body must resolve as
// success, not as a parse failure.
func (c *HTTPClient) DeleteUser(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(username), true, nil, nil)
}

func (c *HTTPClient) ListFavorites(ctx context.Context, username string) ([]string, error) {
	var ids []string
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username)+"/movies", true, nil, &ids)
	return ids, err
}

func (c *HTTPClient) AddFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	var u models.User
	path := "/users/" + url.PathEscape(username) + "/movies/" + url.PathEscape(movieID)
	err := c.do(ctx, http.MethodPost, path, true, nil, &u)
	return u, err
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, username, movieID string) (models.User, error) {
	var u models.User
	path := "/users/" + url.PathEscape(username) + "/movies/" + url.PathEscape(movieID)
	err := c.do(ctx, http.MethodDelete, path, true, nil, &u)
	return u, err
}

// do performs one request/response cycle: marshal the body, attach the
// bearer token when the operation requires a session, send, and either
// decode the response into out or normalize the failure into *Error.
//
// out == nil means the caller does not care about the body; a success
// status is then success no matter what the server wrote.
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: genericTransportMessage, cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Message: genericTransportMessage, cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "err", err)
		return &Error{Kind: KindTransport, Message: genericTransportMessage, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			c.log.Error(ctx, "response read failed", "method", method, "path", path, "err", err)
			return &Error{Kind: KindTransport, Message: genericTransportMessage, cause: err}
		}
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Error(ctx, "undecodable success response",
				"method", method, "path", path, "status", resp.StatusCode, "body", clip(data))
			return &Error{
				Kind:    KindUnexpectedResponse,
				Status:  resp.StatusCode,
				Message: genericTransportMessage,
				cause:   err,
			}
		}
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return c.normalize(ctx, method, path, resp.StatusCode, data)
}

// normalize classifies a non-success response into the single typed
// error shape. It is the only place in the client that inspects raw
// statuses and bodies.
func (c *HTTPClient) normalize(ctx context.Context, method, path string, status int, body []byte) *Error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Status: status, Message: "You are not logged in, or your session has expired."}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status, Message: "Not found."}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Kind: KindValidation, Status: status, Message: serverMessage(body)}
	default:
		c.log.Error(ctx, "unexpected server response",
			"method", method, "path", path, "status", status, "body", clip(body))
		return &Error{
			Kind:    KindTransport,
			Status:  status,
			Message: genericTransportMessage,
			cause:   fmt.Errorf("status %d", status),
		}
	}
}

// serverMessage extracts the display text from a structured validation
// body. myFlix answers either {"message": "..."} or plain text.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if s := strings.TrimSpace(string(body)); s != "" && len(s) <= 200 {
		return s
	}
	return "The server rejected the request."
}

func clip(b []byte) string {
	const n = 512
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
