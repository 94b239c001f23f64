package tokenizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

func TestClientTokenize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tokenize", r.URL.Path)

		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "내일 발표 준비", req.Text)

		json.NewEncoder(w).Encode(map[string]any{
			"tokens": []map[string]string{
				{"form": "내일", "tag": "MAG"},
				{"form": "발표", "tag": "NNG"},
				{"form": "준비", "tag": "NNG"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(ClientDependencies{BaseURL: srv.URL})

	tokens, err := c.Tokenize(context.Background(), "내일 발표 준비")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.False(t, tokens[0].IsNoun())
	assert.True(t, tokens[1].IsNoun())
	assert.Equal(t, domain.Token{Form: "발표", Tag: "NNG"}, tokens[1])
}

func TestClientTokenizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(ClientDependencies{BaseURL: srv.URL})

	_, err := c.Tokenize(context.Background(), "텍스트")
	assert.Error(t, err)
}
