package sqlite_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"board_backend/internal/repository/document"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	table     = "game_session"
	sessionID = "session_id"
	board     = "board"
	state     = "state"
	updatedAt = "updated_at"

	memoryPath = ":memory:"
)

// Repo хранит сессии в файле SQLite
type Repo struct {
	db *sql.DB
}

// NewSQLiteRepository открывает базу, включает WAL и применяет миграцию
func NewSQLiteRepository(ctx context.Context, path string) (*Repo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// одна запись за раз; для :memory: еще и одна общая база
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	r := &Repo{db: db}
	if err := r.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

// Migrate создает таблицу сессий, если ее нет
func (r *Repo) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		`+sessionID+` TEXT PRIMARY KEY,
		`+board+` TEXT NOT NULL,
		`+state+` TEXT NOT NULL,
		`+updatedAt+` INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	return nil
}

func (r *Repo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repo) Load(ctx context.Context, id string) (model.Board, *model.GameState, error) {
	query := sq.Select(board, state).
		From(table).
		Where(sq.Eq{sessionID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, nil, err
	}

	var boardJSON, stateJSON string
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&boardJSON, &stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, repository.ErrStateNotFound
		}
		return nil, nil, err
	}

	return document.Decode([]byte(boardJSON), []byte(stateJSON))
}

// Read SQLite не блокирует строки, то же что Load
func (r *Repo) Read(ctx context.Context, id string) (model.Board, *model.GameState, error) {
	return r.Load(ctx, id)
}

// Save записывает поле и состояние в одной транзакции
func (r *Repo) Save(ctx context.Context, id string, b model.Board, s *model.GameState) error {
	boardJSON, stateJSON, err := document.Encode(b, s)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(sessionID, board, state, updatedAt).
		Values(id, string(boardJSON), string(stateJSON), time.Now().UTC().UnixMilli()).
		Suffix("ON CONFLICT (" + sessionID + ") DO UPDATE SET " +
			board + " = excluded." + board + ", " +
			state + " = excluded." + state + ", " +
			updatedAt + " = excluded." + updatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	return tx.Commit()
}
