package client

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/apiErrors"
)

// Notice é o aviso mostrado ao usuário quando uma operação falha. O
// detalhe técnico só vai para o log.
type Notice struct {
	Title   string
	Message string
	Code    string
}

func (n *Notice) Error() string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}

func noticeFor(operation string, err error) *Notice {
	var notice *Notice
	if errors.As(err, &notice) {
		return notice
	}

	logrus.WithError(err).WithField("operation", operation).Warn("Operação falhou no servidor")

	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case apiErrors.ErrInsufficientPrivilege:
			return &Notice{Title: "Keine Berechtigung", Message: apiErr.Message, Code: apiErr.Code}
		case apiErrors.ErrDatabaseOperation, apiErrors.ErrInternalServer:
			return &Notice{Title: "Fehler", Message: operation + " fehlgeschlagen", Code: apiErr.Code}
		}
		return &Notice{Title: "Fehler", Message: apiErr.Message, Code: apiErr.Code}
	}
	return &Notice{Title: "Fehler", Message: operation + " fehlgeschlagen"}
}
