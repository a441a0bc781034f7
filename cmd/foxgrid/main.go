// foxgrid counts how often a word can be read along the straight lines of
// a square board, over every distinct way of laying out a fixed set of
// tiles, and prints the resulting probabilities.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/foxgrid/config"
	"github.com/domino14/foxgrid/internal/common"
	"github.com/domino14/foxgrid/internal/foxcount"
	"github.com/domino14/foxgrid/internal/stores"
)

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	setLogLevel(cfg.LogLevel)
	log.Debug().Interface("config", cfg).Msg("foxgrid-started")
	ctx := context.Background()

	if cfg.RunID != 0 {
		if cfg.DBPath == "" {
			log.Fatal().Int64("run", cfg.RunID).Msg("-run-id needs -db")
		}
		store, err := stores.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("could not open results db")
		}
		defer store.Close()
		run, err := store.GetRun(ctx, cfg.RunID)
		if err != nil {
			log.Fatal().Err(err).Int64("run", cfg.RunID).Msg("could not load saved run")
		}
		reportSaved(run, 0)
		return
	}

	comp, err := common.ParseComposition(cfg.Letters)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	word := common.InitializeWord(cfg.Word)
	counter, err := foxcount.NewCounter(comp, word)
	if err != nil {
		log.Fatal().Err(err).Str("letters", cfg.Letters).Str("word", cfg.Word).Msg("")
	}

	var store *stores.Store
	if cfg.DBPath != "" {
		store, err = stores.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("could not open results db")
		}
		defer store.Close()
		if !cfg.Recount {
			run, err := store.LatestRun(ctx, comp.String(), word.Word())
			switch {
			case err == nil:
				reportSaved(run, len(counter.Lines()))
				return
			case !errors.Is(err, stores.ErrNotFound):
				log.Fatal().Err(err).Msg("could not look up saved run")
			}
		}
	}

	start := time.Now()
	var h *foxcount.Histogram
	if cfg.Progress {
		h, err = runWithProgress(counter, "counting "+word.Word()+" over "+comp.String())
	} else {
		h, err = counter.Run()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if store != nil {
		id, err := store.SaveRun(ctx, runFromHistogram(comp, word, h, time.Since(start)))
		if err != nil {
			log.Fatal().Err(err).Msg("could not save run")
		}
		log.Info().Int64("run", id).Msg("saved run")
	}
	report(word, h)
}

func report(word common.Word, h *foxcount.Histogram) {
	if err := foxcount.Report(os.Stdout, word.Word(), h); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func runFromHistogram(comp common.Composition, word common.Word, h *foxcount.Histogram,
	elapsed time.Duration) *stores.Run {

	buckets := map[int]uint64{}
	for _, b := range h.Buckets() {
		buckets[b] = h.Count(b)
	}
	return &stores.Run{
		Composition: comp.String(),
		Word:        word.Word(),
		Total:       h.Total(),
		Buckets:     buckets,
		Elapsed:     elapsed,
	}
}

func reportSaved(run *stores.Run, maxCount int) {
	log.Info().Int64("run", run.ID).Str("composition", run.Composition).
		Time("created", run.CreatedAt).Msg("reusing saved run")
	h, err := histogramFromRun(run, maxCount)
	if err != nil {
		log.Fatal().Err(err).Int64("run", run.ID).Msg("")
	}
	report(common.InitializeWord(run.Word), h)
}

func histogramFromRun(run *stores.Run, maxCount int) (*foxcount.Histogram, error) {
	h := foxcount.NewHistogram(maxCount)
	for b, n := range run.Buckets {
		if err := h.AddN(b, n); err != nil {
			return nil, fmt.Errorf("run %d: %w", run.ID, err)
		}
	}
	return h, nil
}
