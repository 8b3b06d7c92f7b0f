package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/nasosev/voronoi-hex/config"
	"github.com/nasosev/voronoi-hex/engine"
	"github.com/nasosev/voronoi-hex/game"
)

func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
		cfg = loaded
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("parsing log level")
	}
	zerolog.SetGlobalLevel(level)

	eng, err := engine.New(cfg.Game, engine.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("starting game")
	}

	winner := runRandomGame(eng)
	log.Info().Str("winner", winner.String()).Int("moves", eng.MoveCount()).Msg("finished")
}

// runRandomGame plays uniformly random claims for both players until the
// game ends. On a valid board this always produces a winner before the
// territories run out.
func runRandomGame(eng *engine.Engine) game.Player {
	board := eng.Board()
	order := make([]int, len(board.Territories))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, id := range order {
		result, err := eng.Claim(id, eng.CurrentPlayer())
		if err != nil {
			log.Fatal().Err(err).Int("territory", id).Msg("unexpected rejection in self-play")
		}
		if result.Terminal {
			return result.Winner
		}
	}
	// Unreachable on a valid board: full occupancy always yields a winner.
	log.Fatal().Msg("board exhausted without a winner")
	return game.Neutral
}
