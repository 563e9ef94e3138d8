package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/fill"
)

func main() {

	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' marks fillable cells)")
	wordsFile := flag.String("words", "", "The file to load words from")
	output := flag.String("output", "", "Optional path to save the solved grid as a PNG")

	logLevel := flag.String("log-level", "info", "Log level: debug, info, or disabled")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	switch *logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *structureFile == "" || *wordsFile == "" {
		fmt.Println("Usage: xwcli -structure <file> -words <file> [-output <file.png>]")
		os.Exit(1)
	}

	ctx := context.Background()

	cw, err := fill.LoadCrossword(ctx, *structureFile, *wordsFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load crossword")
		os.Exit(1)
	}
	log.Info().
		Int("variables", len(cw.Variables)).
		Int("words", len(cw.Words)).
		Msg("loaded crossword")

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to create profile file")
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Error().Err(err).Msg("failed to create memory profile file")
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("failed to start CPU profile")
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	assignment, ok := fill.NewSolver(cw).Solve()
	if !ok {
		fmt.Println("No solution.")
		return
	}

	grid := fill.RenderGrid(cw, assignment)
	log.Debug().Msg(grid.DebugString())
	fmt.Println(grid.Repr())

	if *output != "" {
		if err := fill.SaveImage(cw, assignment, *output); err != nil {
			log.Error().Err(err).Msg("failed to save image")
			os.Exit(1)
		}
		log.Info().Str("path", *output).Msg("saved image")
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}
