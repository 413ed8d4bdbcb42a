package client

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/pipeline"
)

// Board é o quadro do pipeline do lado do cliente. O cartão só muda de
// coluna depois que o servidor confirma o movimento.
type Board struct {
	client   *Client
	loadPath string
	movePath string
	portal   bool

	mu     sync.Mutex
	board  pipeline.Board
	closed bool
}

// NewBoard usa o pipeline da equipe
func NewBoard(client *Client) *Board {
	return &Board{client: client, loadPath: "/v1/pipeline", movePath: "/v1/pipeline/move"}
}

// NewPortalBoard usa o portal do kunde, restrito ao próprio cliente
func NewPortalBoard(client *Client) *Board {
	return &Board{client: client, loadPath: "/v1/portal", movePath: "/v1/portal/move", portal: true}
}

type portalResponse struct {
	Customer *domain.Customer `json:"customer"`
	Board    pipeline.Board   `json:"board"`
}

func (b *Board) Load(ctx context.Context) (pipeline.Board, error) {
	var loaded pipeline.Board
	var err error
	if b.portal {
		var portal portalResponse
		err = b.client.Do(ctx, http.MethodGet, b.loadPath, nil, &portal)
		loaded = portal.Board
	} else {
		err = b.client.Do(ctx, http.MethodGet, b.loadPath, nil, &loaded)
	}
	if err != nil {
		return b.Snapshot(), noticeFor("Pipeline laden", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return pipeline.Board{}, ErrClosed
	}
	b.board = loaded
	return b.board, nil
}

// Move pede ao servidor a troca de etapa. Mesma etapa não gera chamada.
func (b *Board) Move(ctx context.Context, appointmentID string, destination domain.Stage) (bool, error) {
	if !destination.IsValid() {
		return false, &Notice{Title: "Fehler", Message: "Unbekannte Phase: " + string(destination)}
	}
	if current := b.stageOf(appointmentID); current == destination {
		return false, nil
	}

	var resp domain.MoveStageResponse
	err := b.client.Do(ctx, http.MethodPost, b.movePath, domain.MoveStageRequest{
		AppointmentID: appointmentID,
		Destination:   destination,
	}, &resp)
	if err != nil {
		return false, noticeFor("Phase ändern", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return resp.Moved, ErrClosed
	}
	if resp.Moved && resp.Appointment != nil {
		b.place(resp.Appointment)
	}
	return resp.Moved, nil
}

func (b *Board) Snapshot() pipeline.Board {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := make([]*domain.Appointment, 0, b.board.Count())
	for _, c := range b.board.Columns {
		all = append(all, c.Appointments...)
	}
	all = append(all, b.board.Other...)
	return pipeline.GroupByStage(all)
}

func (b *Board) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *Board) stageOf(appointmentID string) domain.Stage {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.board.Columns {
		for _, a := range c.Appointments {
			if a.ID == appointmentID {
				return c.Stage
			}
		}
	}
	for _, a := range b.board.Other {
		if a.ID == appointmentID {
			return a.Result
		}
	}
	return ""
}

// place tira o cartão de onde estiver e o reagrupa com a etapa nova, na
// mesma ordem do servidor (data e hora)
func (b *Board) place(moved *domain.Appointment) {
	all := make([]*domain.Appointment, 0, b.board.Count()+1)
	for _, c := range b.board.Columns {
		for _, a := range c.Appointments {
			if a.ID != moved.ID {
				all = append(all, a)
			}
		}
	}
	for _, a := range b.board.Other {
		if a.ID != moved.ID {
			all = append(all, a)
		}
	}
	all = append(all, moved)
	slices.SortStableFunc(all, func(x, y *domain.Appointment) int {
		if c := x.Date.Time.Compare(y.Date.Time); c != 0 {
			return c
		}
		return strings.Compare(x.Time, y.Time)
	})
	b.board = pipeline.GroupByStage(all)
}
