package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/infrastructure/backend"
)

func newServer(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 5*time.Second)
}

func TestFetchProducts_DecodificaElContrato(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"leche","unit":"l","quantity":2,"package_size":1,"threshold":3,"main":true,"category":"lácteos","storage":"nevera","is_spice":false,"level":null},
			{"name":"comino","unit":"g","quantity":0,"package_size":1,"main":false,"is_spice":true,"level":"brak"}
		]`))
	})

	products, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "leche", products[0].Name)
	require.NotNil(t, products[0].Threshold)
	assert.True(t, products[1].IsSpice)
	assert.Equal(t, "brak", products[1].Level)
}

func TestMatchReceipt_EnviaLasLineasYDecodificaCandidatos(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ocr-match", r.URL.Path)

		var body struct {
			Items []string `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"mleko 3,2%"}, body.Items)

		_, _ = w.Write([]byte(`[{"original":"mleko 3,2%","matches":[{"name":"leche"}]}]`))
	})

	matches, err := c.MatchReceipt(context.Background(), []string{"mleko 3,2%"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "leche", matches[0].Matches[0].Name)
}

func TestReplaceFavorites_PutConReemplazoCompleto(t *testing.T) {
	var got []string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/favorites", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.ReplaceFavorites(context.Background(), []string{"tortilla"}))
	assert.Equal(t, []string{"tortilla"}, got)
}

func TestErrores_EstadoNo2xxYJSONMalformado(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	_, err := c.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")

	c2 := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{esto no es json`))
	})
	_, err = c2.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformada")
}
