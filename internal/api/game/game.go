package game

import (
	dto "board_backend/internal/api/dto/game"
	"board_backend/internal/config"
	"board_backend/internal/converter"
	"board_backend/internal/service"
	gameServ "board_backend/internal/service/game"
	"board_backend/pkg/req"
	"board_backend/pkg/resp"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var (
	errPersistenceUnavailable = errors.New("persistence unavailable")
	errInternal               = errors.New("internal error")
)

// defaultRoundsLimit Сколько раундов отдавать без ?limit
const defaultRoundsLimit = 20

type HandlerDeps struct {
	Serv service.GameService
	Cfg  config.GameConfig
}

type Handler struct {
	serv service.GameService
	cfg  config.GameConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, cfg: deps.Cfg}
}

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.PlaceBet(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponse(*result))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Reset(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponse(*result))
}

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.serv.Board(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoard(board))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state, h.cfg.Wager()))
}

// Dice Бросок кубиков без хода, [d1, d2]
func (h *Handler) Dice(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDice(h.serv.RollDice(r.Context())))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	limit, err := req.QueryInt(r, "limit", defaultRoundsLimit)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundsResponse(h.serv.Rounds(limit)))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// writeServiceError Текст ошибки драйвера уходит только в лог
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().
		Err(err).
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg("game request failed")

	if errors.Is(err, gameServ.ErrPersistence) {
		resp.WriteError(w, http.StatusInternalServerError, errPersistenceUnavailable)
		return
	}
	resp.WriteError(w, http.StatusInternalServerError, errInternal)
}
