package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.pdb" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ATOM"))
	}))
	defer srv.Close()

	body, err := Get(context.Background(), srv.URL+"/1abc.pdb")
	require.NoError(t, err)
	assert.Equal(t, "ATOM", string(body))

	_, err = Get(context.Background(), srv.URL+"/missing.pdb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
