package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSendsQueryAndDecodesResults(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"_id": "abc-1", "name": "Ada Lovelace", "title": "Staff Engineer", "score": 0.91},
				{"_id": "abc-2", "position": "Backend Engineer"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	results, err := client.Find(context.Background(), "Go engineer with distributed systems experience")
	require.NoError(t, err)

	assert.Equal(t, "/api/semantic-search", gotPath)
	assert.Equal(t, "Go engineer with distributed systems experience", gotBody["job_description"])
	assert.Equal(t, float64(TopK), gotBody["top_k"])

	require.Len(t, results, 2)
	assert.Equal(t, "abc-1", results[0].ID)
	assert.Equal(t, "Ada Lovelace", results[0].Name)
	assert.Equal(t, "Backend Engineer", results[1].Position)
}

func TestFindUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Find(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFindMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Find(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFindRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, nil)
	_, err := client.Find(ctx, "anything")
	require.Error(t, err)
}
