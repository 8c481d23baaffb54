package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveEngine interface {
	Move(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

// TurnResult describes what happened during one MakeTurn call.
type TurnResult struct {
	Game         *entity.Game
	Status       entity.Status
	ComputerCell *int
}

// GameManager runs single player sessions against the computer. Each call
// loads the game, drives it through a GameController and stores it back.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	engine   moveEngine
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, engine moveEngine) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		engine:   engine,
	}
}

// CreateGame starts a new session. When the human holds O the computer opens.
func (that *GameManager) CreateGame(ctx context.Context, human entity.Mark, difficulty entity.Difficulty) (*TurnResult, error) {
	human, err := entity.ParseMark(string(human))
	if err != nil {
		return nil, err
	}

	difficulty, err = entity.ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), human, difficulty)
	result := &TurnResult{Game: game}

	if !game.IsHumanTurn() {
		cell, err := that.playComputer(game)
		if err != nil {
			return nil, err
		}
		result.ComputerCell = &cell
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Debug("game created", "gameID", game.ID, "human", human, "difficulty", difficulty)

	result.Status = game.Status()

	return result, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human move and, if the game goes on, the computer reply.
// A non-empty difficulty replaces the session's selection before the reply.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int, difficulty entity.Difficulty) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if difficulty != "" {
		if game.Difficulty, err = entity.ParseDifficulty(string(difficulty)); err != nil {
			return nil, err
		}
	}

	controller := tictactoe.NewGameController(game, that.engine)

	status, err := controller.ApplyHumanMove(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("human moved", "cell", cell, "mark", game.Human)

	result := &TurnResult{Game: game}
	if status.IsInProgress() {
		computerCell, err := that.playComputer(game)
		if err != nil {
			return nil, err
		}
		result.ComputerCell = &computerCell
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	result.Status = game.Status()
	if result.Status.IsTerminal() {
		log.Debug("game finished", "outcome", result.Status.Outcome, "winner", result.Status.Winner)
	}

	return result, nil
}

// ResetGame clears the board of a session, keeping its side and difficulty.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*TurnResult, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	controller := tictactoe.NewGameController(game, that.engine)
	controller.ResetGame()

	result := &TurnResult{Game: game}
	if !game.IsHumanTurn() {
		cell, err := that.playComputer(game)
		if err != nil {
			return nil, err
		}
		result.ComputerCell = &cell
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Debug("game reset", "gameID", id)

	result.Status = game.Status()

	return result, nil
}

func (that *GameManager) SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (*entity.Game, error) {
	difficulty, err := entity.ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Difficulty = difficulty
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameManager) playComputer(game *entity.Game) (int, error) {
	controller := tictactoe.NewGameController(game, that.engine)

	cell, _, err := controller.PlayComputerTurn(game.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("computer failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved", "gameID", game.ID, "cell", cell, "mark", game.Computer(), "difficulty", game.Difficulty)

	return cell, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
