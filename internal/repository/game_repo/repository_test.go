package game_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"context"
	"errors"
	"os"
	"testing"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Тесты ходят в настоящий Postgres и пропускаются без PG_TEST_DSN
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	return pool
}

func testBoard() model.Board {
	board := model.Board{}
	for _, v := range model.PrizeValues() {
		board = append(board, model.PrizeCell(v))
	}
	return append(board, model.BonusCell())
}

func TestLoadQueries(t *testing.T) {
	tests := []struct {
		name string
		lock bool
		want string
	}{
		{name: "load for update", lock: true, want: "SELECT board, state FROM game_session WHERE session_id = $1 FOR UPDATE"},
		{name: "plain read", lock: false, want: "SELECT board, state FROM game_session WHERE session_id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlStr, args, err := (&repo{}).loadQuery("default", tt.lock).ToSql()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if sqlStr != tt.want {
				t.Fatalf("unexpected query:\n%s\nwant:\n%s", sqlStr, tt.want)
			}
			if len(args) != 1 || args[0] != "default" {
				t.Fatalf("unexpected args %v", args)
			}
		})
	}
}

func TestLoadSaveInTransaction(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	r := NewGameRepository(pool)

	if _, _, err := r.Load(ctx, "default"); !errors.Is(err, repository.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}

	txManager, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		t.Fatalf("tx manager: %v", err)
	}

	err = txManager.Do(ctx, func(ctx context.Context) error {
		return r.Save(ctx, "default", testBoard(), model.NewGameState(100))
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// откат не должен менять сохраненное состояние
	rollback := errors.New("rollback")
	err = txManager.Do(ctx, func(ctx context.Context) error {
		_, s, err := r.Load(ctx, "default")
		if err != nil {
			return err
		}
		s.Balance = 1
		if err := r.Save(ctx, "default", testBoard(), s); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("expected rollback error, got %v", err)
	}

	_, loaded, err := r.Read(ctx, "default")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.Balance != 100 {
		t.Fatalf("expected balance 100 after rollback, got %d", loaded.Balance)
	}
}
