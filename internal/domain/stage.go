package domain

import (
	"errors"
	"fmt"
)

// Stage é a etapa do pipeline de um compromisso (campo "result")
type Stage string

const (
	StagePending   Stage = "termin_ausstehend"
	StageAttended  Stage = "termin_erschienen"
	StageClosed    Stage = "termin_abgeschlossen"
	StageFollowUp  Stage = "follow_up"
	StageCancelled Stage = "termin_abgesagt"
	StagePostponed Stage = "termin_verschoben"
	StageLost      Stage = "verloren"
)

var ErrInvalidStage = errors.New("etapa de pipeline inválida")

// BoardStages são as colunas do quadro kanban, na ordem de exibição.
// StageLost é aceito em edições mas não tem coluna própria.
var BoardStages = []Stage{
	StagePending,
	StageAttended,
	StageClosed,
	StageFollowUp,
	StageCancelled,
	StagePostponed,
}

var stageLabels = map[Stage]string{
	StagePending:   "Termin ausstehend",
	StageAttended:  "Termin erschienen",
	StageClosed:    "Termin abgeschlossen",
	StageFollowUp:  "Follow-up",
	StageCancelled: "Termin abgesagt",
	StagePostponed: "Termin verschoben",
	StageLost:      "Verloren",
}

func (s Stage) IsValid() bool {
	_, ok := stageLabels[s]
	return ok
}

// IsBoardStage indica se a etapa possui coluna no quadro
func (s Stage) IsBoardStage() bool {
	for _, stage := range BoardStages {
		if stage == s {
			return true
		}
	}
	return false
}

// IsSuccessful indica se a etapa conta para desempenho da equipe
func (s Stage) IsSuccessful() bool {
	return s == StageClosed || s == StageAttended
}

func (s Stage) Label() string {
	return stageLabels[s]
}

func ParseStage(value string) (Stage, error) {
	stage := Stage(value)
	if !stage.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, value)
	}
	return stage, nil
}
