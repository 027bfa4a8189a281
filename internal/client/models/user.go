// Package models defines the typed records exchanged with the myFlix API.
//
// Field names and JSON tags follow the wire format of the server (a
// Mongo-backed REST API using capitalized keys and "_id" identifiers).
// Every payload is parsed into one of these records at the API-client
// boundary; untyped maps never cross into the rest of the client.
package models

import "time"

// User is the server-authoritative user record. The client's copy is a
// read-through cache: every mutating call receives the updated record as
// its response, and the local copy is replaced wholesale.
type User struct {
	ID             string     `json:"_id,omitempty"`
	Username       string     `json:"Username"`
	Email          string     `json:"Email"`
	Birthday       *time.Time `json:"Birthday,omitempty"`
	FavoriteMovies []string   `json:"FavoriteMovies"`
}

// HasFavorite reports whether the given movie id is in the user's
// favorite set.
func (u User) HasFavorite(movieID string) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}

// Credentials is a username/password pair collected for a single login or
// registration attempt. It is ephemeral and never persisted.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username string     `json:"Username"`
	Password string     `json:"Password"`
	Email    string     `json:"Email"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}

// UserUpdate carries the fields of a profile edit. Empty fields are
// omitted from the request body; the server is the source of truth for
// the merge.
type UserUpdate struct {
	Username string     `json:"Username,omitempty"`
	Password string     `json:"Password,omitempty"`
	Email    string     `json:"Email,omitempty"`
	Birthday *time.Time `json:"Birthday,omitempty"`
}
