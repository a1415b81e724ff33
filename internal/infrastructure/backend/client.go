// Package backend implementa el cliente HTTP del backend de inventario.
// Consume los contratos documentados (/api/products, /api/recipes,
// /api/favorites, /api/domain, /api/ocr-match) con net/http de la librería
// estándar; no requiere SDK.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa el puerto Backend.
var _ session.Backend = (*Client)(nil)

// Client es el cliente del backend. Distingue fallos de transporte/estado
// (envuelve el código HTTP) de respuestas JSON malformadas para que el caller
// los reporte con mensajes distintos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout limita cada petición completa;
// las operaciones no se cancelan una vez en vuelo (no hay reintentos aquí,
// el reintento es una acción del toast).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts obtiene el inventario (GET /api/products).
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.getJSON(ctx, "/api/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchRecipes obtiene las recetas (GET /api/recipes).
func (c *Client) FetchRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var out []entity.Recipe
	if err := c.getJSON(ctx, "/api/recipes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchDomain obtiene los datos de referencia (GET /api/domain).
func (c *Client) FetchDomain(ctx context.Context) (*entity.DomainData, error) {
	var out entity.DomainData
	if err := c.getJSON(ctx, "/api/domain", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchReceipt casa líneas de ticket contra el dominio (POST /api/ocr-match).
func (c *Client) MatchReceipt(ctx context.Context, items []string) ([]entity.ReceiptMatch, error) {
	body := struct {
		Items []string `json:"items"`
	}{Items: items}
	var out []entity.ReceiptMatch
	if err := c.sendJSON(ctx, http.MethodPost, "/api/ocr-match", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceFavorites reemplaza la lista completa de favoritos (PUT /api/favorites).
func (c *Client) ReplaceFavorites(ctx context.Context, names []string) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/favorites", names, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.sendJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: serializando cuerpo: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Leer un poco del cuerpo ayuda a diagnosticar sin inundar el log
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%s %s: estado %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: respuesta malformada: %w", method, path, err)
	}
	return nil
}
