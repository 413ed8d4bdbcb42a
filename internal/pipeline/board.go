// Package pipeline agrupa compromissos por etapa e executa a movimentação
// de cartões entre colunas do quadro.
package pipeline

import "github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"

type Column struct {
	Stage        domain.Stage          `json:"stage"`
	Label        string                `json:"label"`
	Appointments []*domain.Appointment `json:"appointments"`
}

// Board traz sempre todas as colunas, mesmo vazias. Compromissos em etapas
// sem coluna (verloren) ficam em Other.
type Board struct {
	Columns []Column              `json:"columns"`
	Other   []*domain.Appointment `json:"other"`
}

func GroupByStage(appointments []*domain.Appointment) Board {
	board := Board{
		Columns: make([]Column, len(domain.BoardStages)),
		Other:   make([]*domain.Appointment, 0),
	}

	index := make(map[domain.Stage]int, len(domain.BoardStages))
	for i, stage := range domain.BoardStages {
		board.Columns[i] = Column{
			Stage:        stage,
			Label:        stage.Label(),
			Appointments: make([]*domain.Appointment, 0),
		}
		index[stage] = i
	}

	for _, a := range appointments {
		if a == nil {
			continue
		}
		if i, ok := index[a.Result]; ok {
			board.Columns[i].Appointments = append(board.Columns[i].Appointments, a)
			continue
		}
		board.Other = append(board.Other, a)
	}

	return board
}

// Column devolve a coluna da etapa, ou nil quando a etapa não tem coluna
func (b *Board) Column(stage domain.Stage) *Column {
	for i := range b.Columns {
		if b.Columns[i].Stage == stage {
			return &b.Columns[i]
		}
	}
	return nil
}

// Count soma os cartões de todas as colunas e de Other
func (b *Board) Count() int {
	total := len(b.Other)
	for _, c := range b.Columns {
		total += len(c.Appointments)
	}
	return total
}
