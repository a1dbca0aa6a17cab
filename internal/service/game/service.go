package game

import (
	"board_backend/internal/config"
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"board_backend/internal/service"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrPersistence - хранилище недоступно или запись не удалась.
// Состояние при этом не меняется.
var ErrPersistence = errors.New("persistence unavailable")

// Transactor выполняет fn в одной транзакции. trm.Manager подходит напрямую.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Roller бросает пару кубиков
type Roller interface {
	Roll() model.DiceRoll
}

// Generator создает новое поле
type Generator interface {
	Generate() model.Board
}

// directTx для хранилищ без внешней транзакции
type directTx struct{}

func (directTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NewDirectTransactor вызывает fn без транзакции
func NewDirectTransactor() Transactor {
	return directTx{}
}

type ServiceDeps struct {
	Cfg       config.GameConfig
	Repo      repository.GameRepository
	StatsRepo repository.StatsRepository
	TxManager Transactor
	Dice      Roller
	Generator Generator
	SessionID string
	Logger    *zerolog.Logger
}

type serv struct {
	cfg       config.GameConfig
	repo      repository.GameRepository
	statsRepo repository.StatsRepository
	txManager Transactor
	dice      Roller
	generator Generator
	sessionID string
	log       zerolog.Logger
	now       func() time.Time

	// mtx Один писатель на сессию: load-mutate-save не пересекаются
	mtx sync.Mutex
}

// NewGameService Собирает игру. Пустые зависимости заменяются значениями по умолчанию.
func NewGameService(deps ServiceDeps) service.GameService {
	s := &serv{
		cfg:       deps.Cfg,
		repo:      deps.Repo,
		statsRepo: deps.StatsRepo,
		txManager: deps.TxManager,
		dice:      deps.Dice,
		generator: deps.Generator,
		sessionID: deps.SessionID,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	if deps.Logger != nil {
		s.log = deps.Logger.With().Str("component", "game").Str("session", deps.SessionID).Logger()
	}
	if s.txManager == nil {
		s.txManager = NewDirectTransactor()
	}
	if s.dice == nil {
		s.dice = NewDiceRoller(nil)
	}
	if s.generator == nil {
		s.generator = NewBoardGenerator(nil)
	}
	return s
}
