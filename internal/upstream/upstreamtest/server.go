// Package upstreamtest provides a fake data provider for tests.
package upstreamtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/ganot/pulseboard/internal/upstream"
)

// Server is a fake upstream provider backed by httptest.
type Server struct {
	*httptest.Server

	Users []upstream.RawUser
	Posts []upstream.RawPost

	// UsersStatus and PostsStatus override the response status when non-zero,
	// letting tests simulate upstream failure.
	UsersStatus int
	PostsStatus int
}

// New starts a fake provider serving the given collections. The server is
// shut down when the test finishes via the returned Server's Close.
func New(users []upstream.RawUser, posts []upstream.RawPost) *Server {
	s := &Server{Users: users, Posts: posts}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, _ *http.Request) {
		serve(w, s.UsersStatus, s.Users)
	})
	mux.HandleFunc("/posts", func(w http.ResponseWriter, _ *http.Request) {
		serve(w, s.PostsStatus, s.Posts)
	})

	s.Server = httptest.NewServer(mux)
	return s
}

func serve(w http.ResponseWriter, status int, v any) {
	if status != 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
