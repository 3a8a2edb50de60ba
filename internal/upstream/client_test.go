package upstream_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/pulseboard/internal/upstream"
	"github.com/ganot/pulseboard/internal/upstream/upstreamtest"
)

func sampleData() ([]upstream.RawUser, []upstream.RawPost) {
	users := []upstream.RawUser{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "leanne@example.com"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "ervin@example.com"},
	}
	posts := []upstream.RawPost{
		{UserID: 1, ID: 1, Title: "first post", Body: "body one"},
		{UserID: 2, ID: 2, Title: "second post", Body: "body two"},
		{UserID: 1, ID: 3, Title: "third post", Body: "body three"},
	}
	return users, posts
}

func TestClient_FetchAll(t *testing.T) {
	users, posts := sampleData()
	server := upstreamtest.New(users, posts)
	defer server.Close()

	client := upstream.NewClient(server.URL, nil, nil)
	gotUsers, gotPosts, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, users, gotUsers)
	require.Equal(t, posts, gotPosts)
}

func TestClient_FetchAllUsersFailure(t *testing.T) {
	users, posts := sampleData()
	server := upstreamtest.New(users, posts)
	defer server.Close()
	server.UsersStatus = http.StatusInternalServerError

	client := upstream.NewClient(server.URL, nil, nil)
	gotUsers, gotPosts, err := client.FetchAll(context.Background())

	var fetchErr *upstream.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "/users", fetchErr.Endpoint)
	require.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)

	// No partial results.
	require.Nil(t, gotUsers)
	require.Nil(t, gotPosts)
}

func TestClient_FetchAllBothFail(t *testing.T) {
	users, posts := sampleData()
	server := upstreamtest.New(users, posts)
	defer server.Close()
	server.UsersStatus = http.StatusBadGateway
	server.PostsStatus = http.StatusBadGateway

	client := upstream.NewClient(server.URL, nil, nil)
	gotUsers, gotPosts, err := client.FetchAll(context.Background())

	var fetchErr *upstream.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Nil(t, gotUsers)
	require.Nil(t, gotPosts)
}

func TestClient_FetchAllCancelled(t *testing.T) {
	users, posts := sampleData()
	server := upstreamtest.New(users, posts)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := upstream.NewClient(server.URL, nil, nil)
	_, _, err := client.FetchAll(ctx)
	require.Error(t, err)
}

func TestClient_UnreachableHost(t *testing.T) {
	client := upstream.NewClient("http://127.0.0.1:1", nil, nil)
	_, _, err := client.FetchAll(context.Background())

	var fetchErr *upstream.FetchError
	require.ErrorAs(t, err, &fetchErr)
}
