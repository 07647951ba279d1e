package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/iburimskiy/wave-puzzle/internal/config"
	"github.com/iburimskiy/wave-puzzle/internal/game"
	"github.com/iburimskiy/wave-puzzle/internal/puzzle"
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for target generation (0 = from clock)")
	native := flag.Bool("native-dialogs", false, "show notifications in native dialogs")
	tps := flag.Int("tps", config.TickRate, "game loop ticks per second")
	quiet := flag.Bool("quiet", false, "disable logging")
	difficulty := flag.String("difficulty", "", "start straight into a session: hard, veryhard or impossible")
	flag.Parse()

	logger := log.New(os.Stderr, "wave-puzzle: ", log.LstdFlags)
	if *quiet {
		logger.SetOutput(io.Discard)
	}
	if *tps <= 0 {
		logger.Fatalf("invalid -tps %d", *tps)
	}

	g := game.NewGame(game.Options{
		Seed:          *seed,
		NativeDialogs: *native,
		TickRate:      *tps,
		Logger:        logger,
	})
	if *difficulty != "" {
		d, err := puzzle.ParseDifficulty(*difficulty)
		if err != nil {
			logger.Fatal(err)
		}
		if err := g.Start(d); err != nil {
			logger.Fatal(err)
		}
	}
	if err := game.Run(g); err != nil {
		logger.Fatal(err)
	}
}
