// Package engine is the coordination layer between the core and its
// rendering/input collaborators. It owns the single serialized mutation
// path; the geometry and board construction run once at game start and are
// immutable afterwards.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/nasosev/voronoi-hex/config"
	"github.com/nasosev/voronoi-hex/game"
	"github.com/nasosev/voronoi-hex/geometry"
)

// Update notifies a collaborator of an accepted claim. The channel carries
// only fully committed state.
type Update struct {
	TerritoryID int
	Player      game.Player
	Status      game.Status
	Winner      game.Player
}

// Engine runs one game.
type Engine struct {
	ID string

	mu       sync.Mutex
	state    *game.GameState
	updateCh chan Update
	logger   zerolog.Logger
}

type Option func(*Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New builds a fresh random board from the config and starts a game on it.
// Generation failure is fatal to starting the game; the caller may retry
// with fewer seed points.
func New(cfg config.Game, opts ...Option) (*Engine, error) {
	e := &Engine{
		ID:     uuid.NewString(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("game_id", e.ID).Logger()

	shape, err := geometry.ParseShape(cfg.RegionShape)
	if err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.RandomSeed != nil {
		seed = *cfg.RandomSeed
	}
	rng := rand.New(rand.NewSource(seed))

	points, err := geometry.Sample(cfg.SeedCount, shape, rng)
	if err != nil {
		return nil, fmt.Errorf("sampling %d points: %w", cfg.SeedCount, err)
	}
	tess, err := geometry.Tessellate(points, shape)
	if err != nil {
		return nil, fmt.Errorf("tessellating: %w", err)
	}
	board, err := game.BuildBoard(tess)
	if err != nil {
		return nil, fmt.Errorf("building board: %w", err)
	}

	e.state = game.NewGameState(board)
	// Buffered to the maximum possible number of moves so Claim never
	// blocks on a slow or absent collaborator.
	e.updateCh = make(chan Update, len(board.Territories))

	e.logger.Info().
		Int("territories", len(board.Territories)).
		Str("shape", shape.String()).
		Uint64("seed", seed).
		Msg("board generated")
	return e, nil
}

// Claim attempts to claim a territory for a player. Rejected claims return
// the sentinel error from the game package and leave all state untouched.
func (e *Engine) Claim(id int, p game.Player) (game.MoveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.state.Claim(id, p)
	if err != nil {
		e.logger.Debug().Err(err).Int("territory", id).Str("player", p.String()).Msg("claim rejected")
		return result, err
	}

	e.logger.Info().
		Int("territory", id).
		Str("player", p.String()).
		Int("move", e.state.MoveCount).
		Bool("terminal", result.Terminal).
		Msg("claim accepted")

	e.updateCh <- Update{
		TerritoryID: id,
		Player:      p,
		Status:      e.state.Status,
		Winner:      result.Winner,
	}
	if result.Terminal {
		e.logger.Info().Str("winner", result.Winner.String()).Msg("game over")
		close(e.updateCh)
	}
	return result, nil
}

// Updates exposes the committed-claim feed. The channel closes once the
// game reaches a terminal state.
func (e *Engine) Updates() <-chan Update {
	return e.updateCh
}

// Board returns a read-only snapshot for rendering: polygons, owners and
// side tags, reflecting only fully committed claims.
func (e *Engine) Board() *game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Board.Copy()
}

// Status returns the current terminal status.
func (e *Engine) Status() game.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

// CurrentPlayer returns whose turn it is.
func (e *Engine) CurrentPlayer() game.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Turn
}

// MoveCount returns the number of accepted moves so far.
func (e *Engine) MoveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.MoveCount
}
