package client

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

// Session existe do login ao logout e é a única fonte do usuário atual
type Session struct {
	Token     string             `json:"token"`
	User      *domain.TeamMember `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
}

type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// FileSessionStore guarda a sessão num único arquivo JSON
type FileSessionStore struct {
	Path string
}

// Load devolve nil, nil quando não há arquivo
func (s FileSessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "lendo sessão")
	}

	session := &Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, errors.Wrap(err, "sessão corrompida")
	}
	if session.Token == "" {
		return nil, nil
	}
	return session, nil
}

func (s FileSessionStore) Save(session *Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "codificando sessão")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return errors.Wrap(err, "criando diretório da sessão")
	}
	return errors.Wrap(os.WriteFile(s.Path, data, 0o600), "gravando sessão")
}

func (s FileSessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removendo sessão")
	}
	return nil
}

// Login abre a sessão. Credenciais erradas voltam como *Notice com a
// mensagem genérica do servidor.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp domain.LoginResponse
	err := c.Do(ctx, http.MethodPost, "/v1/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, noticeFor("Login", err)
	}
	if !resp.Success {
		return nil, &Notice{Title: "Login fehlgeschlagen", Message: resp.Error}
	}

	c.session = &Session{Token: resp.Token, User: resp.User, CreatedAt: time.Now()}
	if c.store != nil {
		if err := c.store.Save(c.session); err != nil {
			return c.session, err
		}
	}
	return c.session, nil
}

// Restore recupera a sessão gravada; sem arquivo devolve nil sem erro
func (c *Client) Restore() (*Session, error) {
	if c.store == nil {
		return nil, nil
	}
	session, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	c.session = session
	return session, nil
}

// Logout encerra a sessão mesmo se o servidor falhar
func (c *Client) Logout(ctx context.Context) error {
	if c.session == nil {
		return ErrNoSession
	}

	err := c.Do(ctx, http.MethodPost, "/v1/logout", nil, nil)
	c.session = nil
	if c.store != nil {
		if clearErr := c.store.Clear(); clearErr != nil {
			return clearErr
		}
	}
	return err
}

func (c *Client) Session() *Session {
	return c.session
}
