package memory_repo

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"context"
	"sync"
)

type entry struct {
	board model.Board
	state *model.GameState
}

// repo хранит сессии в памяти процесса. Данные теряются при перезапуске.
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]entry
}

func NewMemoryRepository() repository.GameRepository {
	return &repo{
		sessions: make(map[string]entry),
	}
}

// Load возвращает копии поля и состояния, чтобы вызывающий код не мог
// изменить сохраненные данные в обход Save
func (r *repo) Load(ctx context.Context, sessionID string) (model.Board, *model.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil, repository.ErrStateNotFound
	}
	return e.board.Clone(), e.state.Clone(), nil
}

// Read В памяти блокировать нечего, то же что Load
func (r *repo) Read(ctx context.Context, sessionID string) (model.Board, *model.GameState, error) {
	return r.Load(ctx, sessionID)
}

func (r *repo) Save(ctx context.Context, sessionID string, board model.Board, state *model.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[sessionID] = entry{
		board: board.Clone(),
		state: state.Clone(),
	}
	return nil
}
