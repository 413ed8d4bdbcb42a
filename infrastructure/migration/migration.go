// Package migration cria o schema do banco a partir do SQL embutido
package migration

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
)

//go:embed schema.sql
var schema string

// Schema devolve o SQL aplicado por Apply
func Schema() string {
	return schema
}

// Apply executa o schema numa transação. Os comandos são idempotentes, então
// pode rodar a cada inicialização.
func Apply(ctx context.Context, conn postgres.TxRunner) error {
	logrus.Info("Aplicando schema do banco de dados")

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "aplicando schema")
	}

	logrus.Info("Schema aplicado com sucesso")
	return nil
}
