package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/database/postgres"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
)

type SettingRepository interface {
	List(ctx context.Context) ([]*domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key, value string) (*domain.Setting, error)
}

type settingRepository struct {
	conn *postgres.Connection
}

func NewSettingRepository(conn *postgres.Connection) SettingRepository {
	return &settingRepository{conn: conn}
}

func (r *settingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	query, args, err := psql.
		Select("key", "value", "updated_at").
		From(domain.TableSettings).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "listando configurações")
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		s := &domain.Setting{}
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, dbError(err, "lendo configuração")
		}
		settings = append(settings, s)
	}

	return settings, dbError(rows.Err(), "iterando configurações")
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query, args, err := psql.
		Select("key", "value", "updated_at").
		From(domain.TableSettings).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, err
	}

	s := &domain.Setting{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "buscando configuração")
	}

	return s, nil
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) (*domain.Setting, error) {
	query, args, err := psql.
		Insert(domain.TableSettings).
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
			RETURNING key, value, updated_at
		`).
		ToSql()
	if err != nil {
		return nil, err
	}

	s := &domain.Setting{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		return nil, dbError(err, "gravando configuração")
	}

	return s, nil
}
