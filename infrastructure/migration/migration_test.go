package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_DeclaresEveryTable(t *testing.T) {
	tables := []string{
		domain.TableCustomers,
		domain.TableAppointments,
		domain.TableTeamMembers,
		domain.TableTeamMemberEarnings,
		domain.TableTeamMemberExpenses,
		domain.TableAppointmentHistory,
		domain.TableRevenues,
		domain.TableExpenses,
		domain.TableTodos,
		domain.TableHotLeads,
		domain.TableAuditLogs,
		domain.TableSettings,
	}

	for _, table := range tables {
		assert.Contains(t, Schema(), "CREATE TABLE IF NOT EXISTS "+table+" (", "tabela %s ausente", table)
	}

	for _, stage := range append(domain.BoardStages, domain.StageLost) {
		assert.Contains(t, Schema(), "'"+string(stage)+"'")
	}
}

func TestSchema_CustomerReferencesHaveNoForeignKey(t *testing.T) {
	for _, line := range strings.Split(Schema(), "\n") {
		if strings.Contains(line, "customer_id") {
			assert.NotContains(t, line, "REFERENCES", "customer_id não pode ter FK: %s", line)
		}
	}
}

func TestApply(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(Schema()).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		require.NoError(t, Apply(context.Background(), postgres.Wrap(db)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro desfaz a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(Schema()).WillReturnError(errors.New("permissão negada"))
		mock.ExpectRollback()

		err = Apply(context.Background(), postgres.Wrap(db))
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
