package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/pkg/errors"
)

// ErrClosed é devolvido quando a resposta chega depois de Close
var ErrClosed = errors.New("coleção encerrada")

// Collection mantém a lista local de uma entidade. A lista só muda depois
// que o servidor confirma a gravação; em falha fica como estava.
type Collection[T any] struct {
	client *Client
	path   string
	idOf   func(T) string

	mu     sync.Mutex
	items  []T
	closed bool
}

func NewCollection[T any](client *Client, path string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{
		client: client,
		path:   path,
		idOf:   idOf,
		items:  make([]T, 0),
	}
}

// Fetch substitui a lista local pela do servidor. query pode ser nil.
func (c *Collection[T]) Fetch(ctx context.Context, query url.Values) ([]T, error) {
	path := c.path
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var items []T
	if err := c.client.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return c.Items(), noticeFor("Laden", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if items == nil {
		items = make([]T, 0)
	}
	c.items = items
	return c.snapshot(), nil
}

// Add cria o registro e o coloca no início da lista
func (c *Collection[T]) Add(ctx context.Context, request any) (T, error) {
	var created T
	if err := c.client.Do(ctx, http.MethodPost, c.path, request, &created); err != nil {
		return created, noticeFor("Anlegen", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return created, ErrClosed
	}
	c.items = append([]T{created}, c.items...)
	return created, nil
}

// Update troca o item de mesmo id pela versão gravada
func (c *Collection[T]) Update(ctx context.Context, id string, request any) (T, error) {
	var updated T
	if err := c.client.Do(ctx, http.MethodPut, c.path+"/"+url.PathEscape(id), request, &updated); err != nil {
		return updated, noticeFor("Aktualisieren", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return updated, ErrClosed
	}
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items[i] = updated
			break
		}
	}
	return updated, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.path+"/"+url.PathEscape(id), nil, nil); err != nil {
		return noticeFor("Löschen", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Close descarta respostas que ainda estejam a caminho
func (c *Collection[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
