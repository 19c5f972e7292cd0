package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

func newTestRemote(t *testing.T, serverURL string) store.RemoteLibrary {
	t.Helper()

	remote, err := NewHTTPRemoteLibrary(config.Remote{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return remote
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", raw: "library.example.com:8080", want: "http://library.example.com:8080"},
		{name: "trailing slash trimmed", raw: "https://library.example.com/", want: "https://library.example.com"},
		{name: "kept as is", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "empty", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindOrCreateUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 42, Username: "alice"})
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	user, err := remote.FindOrCreateUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

func TestListContent_Success(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contents", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("keyword"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Content{
			{ID: 1, Title: "Dune", FilePath: "/dune.pdf", FileType: "pdf", SizeBytes: 2048, AddedAt: &now},
		})
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	items, err := remote.ListContent(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dune", items[0].Title)
	require.NotNil(t, items[0].AddedAt)
	assert.True(t, now.Equal(*items[0].AddedAt))
}

func TestSearchContent_SendsKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dune", r.URL.Query().Get("keyword"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Content{})
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	_, err := remote.SearchContent(context.Background(), "dune")

	require.NoError(t, err)
}

func TestInsertContent_ReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contents", r.URL.Path)

		var body models.Content
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body.ID = 9

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	created, err := remote.InsertContent(context.Background(), models.Content{Title: "Dune", FilePath: "/dune.pdf", FileType: "pdf"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "Dune", created.Title)
}

func TestToggleFavourite_ParsesMembership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/42/favourites/7/toggle", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"favourite": true}`))
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	member, err := remote.ToggleFavourite(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.True(t, member)
}

func TestUpsertHistory_PutsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/42/history", r.URL.Path)

		var body models.HistoryRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body.ID = 5
		body.LastReadAt = time.Now().UTC()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	stored, err := remote.UpsertHistory(context.Background(), models.HistoryRecord{UserID: 42, ContentID: 7, PageNumber: 12})

	require.NoError(t, err)
	assert.Equal(t, int64(5), stored.ID)
	assert.Equal(t, 12, stored.PageNumber)
}

func TestPing_MapsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	err := remote.Ping(context.Background())

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestListFavourites_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	remote := newTestRemote(t, srv.URL)
	_, err := remote.ListFavourites(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
