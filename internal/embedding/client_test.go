package embedding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"index":0,"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "test-model", 3, 5*time.Second)
	vec, err := c.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestEmbedBatchPreservesOrder(t *testing.T) {
	// Providers may return data entries out of order; index wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"index":1,"embedding":[2]},{"index":0,"embedding":[1]}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "test-model", 0, 5*time.Second)
	vecs, err := c.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {2}}, vecs)
}

func TestEmbedMissingAPIKey(t *testing.T) {
	c := NewClient("", "http://localhost:1", "test-model", 0, time.Second)
	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEmbedProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "test-model", 0, time.Second)
	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEmbedUnreachable(t *testing.T) {
	c := NewClient("test-key", "http://127.0.0.1:1", "test-model", 0, time.Second)
	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEmbedMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"no data":         `{"object":"list"}`,
		"empty data":      `{"data":[]}`,
		"empty embedding": `{"data":[{"index":0,"embedding":[]}]}`,
		"not json":        `oops`,
		"index range":     `{"data":[{"index":5,"embedding":[1]}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer srv.Close()

			c := NewClient("test-key", srv.URL, "test-model", 0, time.Second)
			_, err := c.Embed(context.Background(), "hello")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
