// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=customer.go -destination=mocks/customer.go -package=mocks
//go:generate mockgen -source=appointment.go -destination=mocks/appointment.go -package=mocks
//go:generate mockgen -source=team_member.go -destination=mocks/team_member.go -package=mocks
//go:generate mockgen -source=member_ledger.go -destination=mocks/member_ledger.go -package=mocks
//go:generate mockgen -source=bookkeeping.go -destination=mocks/bookkeeping.go -package=mocks
//go:generate mockgen -source=todo.go -destination=mocks/todo.go -package=mocks
//go:generate mockgen -source=hot_lead.go -destination=mocks/hot_lead.go -package=mocks
//go:generate mockgen -source=audit_log.go -destination=mocks/audit_log.go -package=mocks
//go:generate mockgen -source=setting.go -destination=mocks/setting.go -package=mocks
//go:generate mockgen -source=counters.go -destination=mocks/counters.go -package=mocks

var (
	ErrDuplicate        = errors.New("registro duplicado")
	ErrMissingReference = errors.New("registro referenciado não existe")
)

// Códigos do PostgreSQL tratados explicitamente
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// dbError traduz violações conhecidas e anexa o contexto da operação
func dbError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.Wrapf(ErrDuplicate, "%s: %s", op, pqErr.Constraint)
		case pqForeignKeyViolation:
			return errors.Wrapf(ErrMissingReference, "%s: %s", op, pqErr.Constraint)
		}
		return errors.Wrapf(err, "%s (código: %s)", op, pqErr.Code)
	}

	return errors.Wrap(err, op)
}

func rowsAffected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// jsonArg envia payloads JSON vazios como NULL
func jsonArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
