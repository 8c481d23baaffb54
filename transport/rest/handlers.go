package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, human entity.Mark, difficulty entity.Difficulty) (*usecase.TurnResult, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int, difficulty entity.Difficulty) (*usecase.TurnResult, error)
	ResetGame(ctx context.Context, id string) (*usecase.TurnResult, error)
	SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type createGameRequest struct {
	HumanMark  string `json:"human_mark"`
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	Cell       *int   `json:"cell"`
	Difficulty string `json:"difficulty,omitempty"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

// GameResponse is the JSON view of a game returned by every endpoint.
type GameResponse struct {
	Game         *entity.Game  `json:"game"`
	Status       entity.Status `json:"status"`
	StatusText   string        `json:"status_text"`
	ComputerCell *int          `json:"computer_cell,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Defaults are used for new games when the request does not choose.
type Defaults struct {
	Human      entity.Mark
	Difficulty entity.Difficulty
}

type GameHandlers struct {
	logger   *slog.Logger
	games    gameUseCase
	defaults Defaults
}

func NewGameHandlers(logger *slog.Logger, games gameUseCase, defaults Defaults) *GameHandlers {
	if !defaults.Human.IsPlayer() {
		defaults.Human = entity.PlayerX
	}

	if !defaults.Difficulty.IsValid() {
		defaults.Difficulty = entity.DifficultyHard
	}

	return &GameHandlers{
		logger:   logger.With("component", "rest"),
		games:    games,
		defaults: defaults,
	}
}

func (that *GameHandlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	// an empty body asks for the defaults
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	human := that.defaults.Human
	if req.HumanMark != "" {
		mark, err := entity.ParseMark(req.HumanMark)
		if err != nil {
			that.writeError(w, err)
			return
		}
		human = mark
	}

	difficulty := that.defaults.Difficulty
	if req.Difficulty != "" {
		parsed, err := entity.ParseDifficulty(req.Difficulty)
		if err != nil {
			that.writeError(w, err)
			return
		}
		difficulty = parsed
	}

	result, err := that.games.CreateGame(r.Context(), human, difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTurnResponse(result))
}

func (that *GameHandlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	var difficulty entity.Difficulty
	if req.Difficulty != "" {
		parsed, err := entity.ParseDifficulty(req.Difficulty)
		if err != nil {
			that.writeError(w, err)
			return
		}
		difficulty = parsed
	}

	result, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "gameID"), *req.Cell, difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTurnResponse(result))
}

func (that *GameHandlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	result, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTurnResponse(result))
}

func (that *GameHandlers) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.games.SetDifficulty(r.Context(), chi.URLParam(r, "gameID"), difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes.
func (that *GameHandlers) writeError(w http.ResponseWriter, err error) {
	var status int

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownDifficulty),
		errors.Is(err, apperror.ErrUnknownMark):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNoMoveAvailable):
		status = http.StatusConflict
	default:
		that.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func newGameResponse(game *entity.Game) GameResponse {
	status := game.Status()

	return GameResponse{
		Game:       game,
		Status:     status,
		StatusText: status.Text(game.Turn),
	}
}

func newTurnResponse(result *usecase.TurnResult) GameResponse {
	response := newGameResponse(result.Game)
	response.ComputerCell = result.ComputerCell

	return response
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
