package game

import (
	"errors"
	"fmt"
)

// Status is the terminal state of a game.
type Status int

const (
	Ongoing Status = iota
	BlueWon
	RedWon
)

func (s Status) String() string {
	switch s {
	case BlueWon:
		return "blue won"
	case RedWon:
		return "red won"
	default:
		return "ongoing"
	}
}

// Errors returned by Claim. A rejected claim never mutates any state.
var (
	ErrUnknownTerritory = errors.New("game: unknown territory")
	ErrAlreadyOwned     = errors.New("game: territory already owned")
	ErrNotYourTurn      = errors.New("game: not your turn")
	ErrGameOver         = errors.New("game: game is over - no moves allowed")
)

// Reason mirrors the Claim errors for callers that switch on the result
// instead of unwrapping errors.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonUnknown
	ReasonAlreadyOwned
	ReasonNotYourTurn
	ReasonGameOver
)

// MoveResult is the outcome of a claim attempt.
type MoveResult struct {
	Accepted bool
	Reason   Reason
	Terminal bool
	Winner   Player // Neutral unless Terminal
}

// GameState tracks ownership and turn order on a fixed board - the stuff
// that changes during play. The board graph itself is static.
type GameState struct {
	Board     *Board
	Turn      Player
	MoveCount int
	Status    Status

	blue *connectivity
	red  *connectivity
}

// NewGameState starts a game on the given board. Red opens.
func NewGameState(b *Board) *GameState {
	return &GameState{
		Board: b,
		Turn:  Red,
		blue:  newConnectivity(b, Blue),
		red:   newConnectivity(b, Red),
	}
}

// Claim records a claim of a territory by a player. All preconditions are
// checked before anything mutates, so a rejection is always side-effect
// free. On success the owner is set, the turn advances, the move count
// increments, and the result reports whether the move won the game.
func (gs *GameState) Claim(id int, p Player) (MoveResult, error) {
	if gs.Status != Ongoing {
		return MoveResult{Reason: ReasonGameOver}, ErrGameOver
	}
	t, ok := gs.Board.Territory(id)
	if !ok {
		return MoveResult{Reason: ReasonUnknown}, fmt.Errorf("%w: %d", ErrUnknownTerritory, id)
	}
	if t.Owner != Neutral {
		return MoveResult{Reason: ReasonAlreadyOwned}, fmt.Errorf("%w: territory %d owned by %s", ErrAlreadyOwned, id, t.Owner)
	}
	if p != gs.Turn {
		return MoveResult{Reason: ReasonNotYourTurn}, fmt.Errorf("%w: %s tried to move on %s's turn", ErrNotYourTurn, p, gs.Turn)
	}

	t.Owner = p
	gs.MoveCount++
	gs.Turn = gs.Turn.Opponent()

	conn := gs.connectivityOf(p)
	conn.add(gs.Board, t)
	if conn.connected() {
		if p == Blue {
			gs.Status = BlueWon
		} else {
			gs.Status = RedWon
		}
		return MoveResult{Accepted: true, Terminal: true, Winner: p}, nil
	}
	return MoveResult{Accepted: true}, nil
}

// Winner returns the winning player, or Neutral while the game is ongoing.
func (gs *GameState) Winner() Player {
	switch gs.Status {
	case BlueWon:
		return Blue
	case RedWon:
		return Red
	default:
		return Neutral
	}
}

func (gs *GameState) connectivityOf(p Player) *connectivity {
	if p == Blue {
		return gs.blue
	}
	return gs.red
}
