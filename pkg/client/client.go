// Package client é o SDK HTTP do painel: sessão explícita, coleções locais
// que só mudam depois da confirmação do servidor e o quadro do pipeline.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoSession indica chamada autenticada sem login
var ErrNoSession = errors.New("nenhuma sessão ativa")

type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
	session    *Session
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSessionStore persiste a sessão entre execuções
func WithSessionStore(store SessionStore) Option {
	return func(c *Client) {
		c.store = store
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executa a chamada e decodifica a resposta em out. Respostas fora de
// 2xx viram *apiErrors.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "codificando requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "montando requisição")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiErrors.APIError{}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			return &apiErrors.APIError{
				Code:    apiErrors.ErrCommunication,
				Message: fmt.Sprintf("resposta inesperada: %d", resp.StatusCode),
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decodificando resposta")
}
