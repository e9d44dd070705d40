// Train Kuhn poker strategies with vanilla CFR and report the average
// strategy of every information state.
package main

import (
	"flag"
	"io"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/majkelelele/kuhncfr"
	"github.com/majkelelele/kuhncfr/internal/config"
	"github.com/majkelelele/kuhncfr/ldbstore"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	iterations := flag.Int("iterations", 0, "Number of CFR iterations to run")
	seed := flag.Int64("seed", 0, "Random seed")
	checkpointDB := flag.String("checkpoint_db", "",
		"LevelDB directory to resume training from and save the result to")
	simulateGames := flag.Int("simulate_games", 0,
		"Number of self-play games to simulate with the trained strategies")
	debugAddr := flag.String("debug_addr", "", "Address to serve pprof on, e.g. localhost:4123")
	flag.Set("logtostderr", "true")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		glog.Fatal(err)
	}

	// Flags given on the command line take precedence over the config.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			cfg.Iterations = *iterations
		case "seed":
			cfg.Seed = *seed
		case "checkpoint_db":
			cfg.CheckpointDB = *checkpointDB
		case "simulate_games":
			cfg.SimulateGames = *simulateGames
		case "debug_addr":
			cfg.DebugAddr = *debugAddr
		}
	})

	if err := cfg.Validate(); err != nil {
		glog.Fatal(err)
	}

	if cfg.DebugAddr != "" {
		go http.ListenAndServe(cfg.DebugAddr, nil)
	}

	if err := run(cfg, os.Stdout); err != nil {
		glog.Fatal(err)
	}
}

// run trains from the checkpoint named in cfg, if any, writes the report
// to w and saves the checkpoint. The checkpoint store is closed before run
// returns, including on error.
func run(cfg config.Config, w io.Writer) error {
	table := cfr.NewTable()
	var store *ldbstore.Store
	if cfg.CheckpointDB != "" {
		var err error
		store, err = ldbstore.Open(cfg.CheckpointDB, &opt.Options{})
		if err != nil {
			return err
		}
		defer store.Close()

		restored, ok, err := store.Load()
		if err != nil {
			return err
		} else if ok {
			glog.Infof("Resuming run %s from iter %d", store.RunID(), restored.Iter())
			table = restored
		}
	}

	trainer, err := cfr.NewTrainerWithTable(cfg.Params(), table)
	if err != nil {
		return err
	}

	glog.Infof("Training for %d iterations with seed %d", cfg.Iterations, cfg.Seed)
	start := time.Now()
	ev := trainer.Train()
	glog.Infof("Trained to iter %d in %v. Average game value: %.4f",
		trainer.Iter(), time.Since(start), ev)
	glog.Infof("Game value of average strategies: %.4f, exploitability: %.5f",
		cfr.ExpectedValue(table), cfr.Exploitability(table))

	if err := trainer.Report(w); err != nil {
		return err
	}

	if cfg.SimulateGames > 0 {
		rng := rand.New(rand.NewSource(cfg.Seed))
		simulated := cfr.Simulate(table, cfg.SimulateGames, rng)
		glog.Infof("Simulated %d games: average payoff to player 0 is %.4f",
			cfg.SimulateGames, simulated)
	}

	if store != nil {
		if err := store.Save(table); err != nil {
			return err
		}

		glog.Infof("Saved checkpoint of run %s to %s", store.RunID(), cfg.CheckpointDB)
	}

	return nil
}
