package sqlite_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openRepo(t *testing.T, path string) *Repo {
	t.Helper()
	r, err := NewSQLiteRepository(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func testBoard() model.Board {
	board := model.Board{}
	for _, v := range model.PrizeValues() {
		board = append(board, model.PrizeCell(v))
	}
	return append(board, model.BonusCell())
}

func TestLoadMissing(t *testing.T) {
	r := openRepo(t, ":memory:")

	_, _, err := r.Load(context.Background(), "default")
	if !errors.Is(err, repository.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestSaveOverwritesSession(t *testing.T) {
	ctx := context.Background()
	r := openRepo(t, ":memory:")

	if err := r.Save(ctx, "default", testBoard(), model.NewGameState(100)); err != nil {
		t.Fatalf("first save: %v", err)
	}

	dice := model.DiceRoll{3, 4}
	next := model.NewGameState(50)
	next.Position = 7
	next.LastDice = &dice
	if err := r.Save(ctx, "default", testBoard(), next); err != nil {
		t.Fatalf("second save: %v", err)
	}

	_, loaded, err := r.Load(ctx, "default")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Balance != 50 || loaded.Position != 7 || loaded.LastDice == nil || *loaded.LastDice != dice {
		t.Fatalf("unexpected state %+v", loaded)
	}
}

func TestCorruptRow(t *testing.T) {
	ctx := context.Background()
	r := openRepo(t, ":memory:")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO game_session (session_id, board, state, updated_at) VALUES (?, ?, ?, ?)`,
		"default", `[1,2,3]`, `{"balance":1}`, 0)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, _, err := r.Load(ctx, "default"); !errors.Is(err, repository.ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "game.db")

	first, err := NewSQLiteRepository(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Save(ctx, "default", testBoard(), model.NewGameState(42)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openRepo(t, path)
	_, loaded, err := second.Read(ctx, "default")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Balance != 42 {
		t.Fatalf("expected balance 42, got %d", loaded.Balance)
	}
}
