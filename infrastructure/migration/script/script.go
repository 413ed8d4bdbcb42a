// Comando de bootstrap: aplica o schema e cria o primeiro administrador.
//
//	go run ./infrastructure/migration/script -email admin@agentur.de -name "Admin"
package main

import (
	"context"
	"database/sql"
	"flag"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/migration"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/config"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordLength = 16
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de bootstrap...")
}

func main() {
	setupLogger()

	email := flag.String("email", "", "email do administrador inicial")
	name := flag.String("name", "Admin", "nome do administrador inicial")
	flag.Parse()

	if *email == "" {
		logrus.Fatal("Informe -email para o administrador inicial")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar schema")
	}

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return seedAdmin(ctx, tx, strings.ToLower(strings.TrimSpace(*email)), *name)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar administrador")
	}

	logrus.Infof("Bootstrap concluído em %v", time.Since(startTime))
}

func seedAdmin(ctx context.Context, tx *sql.Tx, email, name string) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM team_members WHERE user_role = $1)`, domain.RoleAdmin,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		logrus.Info("Já existe um administrador, nada a fazer")
		return nil
	}

	password, err := gonanoid.Generate(characters, passwordLength)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO team_members (id, name, email, password_hash, user_role, is_active) VALUES ($1, $2, $3, $4, $5, TRUE)`,
		uuid.NewString(), name, email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"email": email,
	}).Warnf("Administrador criado. Senha inicial (troque após o primeiro login): %s", password)

	return nil
}
