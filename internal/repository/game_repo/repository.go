package game_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"board_backend/internal/repository/document"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "game_session"
	sessionID = "session_id"
	board     = "board"
	state     = "state"
	updatedAt = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewGameRepository Postgres хранилище сессий.
// Внутри txManager.Do запросы идут в открытой транзакции.
func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Migrate создает таблицу сессий, если ее нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		`+sessionID+` TEXT PRIMARY KEY,
		`+board+` JSONB NOT NULL,
		`+state+` JSONB NOT NULL,
		`+updatedAt+` TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}

// Load читает сессию и блокирует строку до конца транзакции
func (r *repo) Load(ctx context.Context, id string) (model.Board, *model.GameState, error) {
	return r.get(ctx, id, true)
}

// Read читает сессию без FOR UPDATE
func (r *repo) Read(ctx context.Context, id string) (model.Board, *model.GameState, error) {
	return r.get(ctx, id, false)
}

func (r *repo) get(ctx context.Context, id string, lock bool) (model.Board, *model.GameState, error) {
	sqlStr, args, err := r.loadQuery(id, lock).ToSql()
	if err != nil {
		return nil, nil, err
	}

	var boardJSON, stateJSON []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&boardJSON, &stateJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, repository.ErrStateNotFound
		}
		return nil, nil, err
	}

	return document.Decode(boardJSON, stateJSON)
}

func (r *repo) loadQuery(id string, lock bool) sq.SelectBuilder {
	query := sq.Select(board, state).
		From(table).
		Where(sq.Eq{sessionID: id}).
		PlaceholderFormat(sq.Dollar)
	if lock {
		query = query.Suffix("FOR UPDATE")
	}
	return query
}

// Save вставляет или перезаписывает сессию
func (r *repo) Save(ctx context.Context, id string, b model.Board, s *model.GameState) error {
	boardJSON, stateJSON, err := document.Encode(b, s)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(sessionID, board, state, updatedAt).
		Values(id, string(boardJSON), string(stateJSON), sq.Expr("now()")).
		Suffix("ON CONFLICT (" + sessionID + ") DO UPDATE SET " +
			board + " = EXCLUDED." + board + ", " +
			state + " = EXCLUDED." + state + ", " +
			updatedAt + " = EXCLUDED." + updatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
