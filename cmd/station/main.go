package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/abandoned-station/internal/config"
	"github.com/vancomm/abandoned-station/internal/console"
	"github.com/vancomm/abandoned-station/internal/station"
	"github.com/vancomm/abandoned-station/internal/tui"
)

var (
	log = newLogger()

	stderr io.Writer = os.Stderr

	configPath string
	gameSeed   string
	randSeed   uint64
	debug      bool
	useTUI     bool
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&gameSeed, "game", "", "grid as W:H:N, skips the setup dialogue")
	flag.Uint64Var(&randSeed, "seed", 0, "seed for hazard placement")
	flag.BoolVar(&debug, "debug", false, "show hazard locations")
	flag.BoolVar(&useTUI, "tui", false, "full-screen interface")
}

func createRand(seeded bool) *rand.Rand {
	if seeded {
		return rand.New(rand.NewPCG(randSeed, randSeed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// newLogger returns a logger that writes nowhere until setupLogging attaches
// the log file.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fatal(format string, a ...any) int {
	log.Errorf(format, a...)
	fmt.Fprintf(stderr, format+"\n", a...)
	return 1
}

// needsConsole reports whether the line console is used at all. The TUI with
// a fixed grid never prompts, and stdin must stay untouched for tcell.
func needsConsole(cfg config.Config, fixed *station.GameParams) bool {
	return !cfg.Game.TUI || fixed == nil
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if err := config.LoadDotEnv(); err != nil {
		return cfg, fmt.Errorf("unable to load .env: %w", err)
	}
	if configPath != "" {
		if err := config.ReadConfig(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to read environment: %w", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "game":
			cfg.Game.Seed = gameSeed
		case "debug":
			cfg.Game.Debug = debug
		case "tui":
			cfg.Game.TUI = useTUI
		}
	})
	return cfg, nil
}

func run() int {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	seeded := false
	flag.Visit(func(f *flag.Flag) {
		seeded = seeded || f.Name == "seed"
	})

	cfg, err := loadConfig()
	if err != nil {
		return fatal("%s", err)
	}

	if err := setupLogging(log, cfg, uuid.NewString()); err != nil {
		return fatal("unable to set up logging: %s", err)
	}
	station.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	var fixed *station.GameParams
	if cfg.Game.Seed != "" {
		if fixed, err = station.ParseSeed(cfg.Game.Seed); err == nil {
			err = fixed.Validate()
		}
		if err != nil {
			return fatal("invalid game %q: %s", cfg.Game.Seed, err)
		}
	}

	var con *console.Console
	if needsConsole(cfg, fixed) {
		con = console.New(os.Stdin, os.Stdout, log)
		con.Debug = cfg.Game.Debug
		con.ClearScreen = isatty.IsTerminal(os.Stdout.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		var (
			params station.GameParams
			err    error
		)
		if fixed != nil {
			params = *fixed
		} else if params, err = con.Setup(gCtx); err != nil {
			return err
		}

		game, err := station.NewGame(params, createRand(seeded))
		if err != nil {
			return err
		}
		log.WithField("game", params.Seed()).Info("game started")

		if cfg.Game.TUI {
			return tui.New(game, cfg.Game.Debug, log).Run(gCtx)
		}
		return con.Play(gCtx, game)
	})

	err = g.Wait()
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
		fmt.Println("\nGame was interrupted by the user. Goodbye!")
	case errors.Is(err, io.EOF):
		log.Info("input closed during setup")
		fmt.Println("\nGame terminated. Goodbye!")
	case err != nil:
		return fatal("exit reason: %s", err)
	default:
		log.Info("shutting down")
	}
	return 0
}

func main() {
	os.Exit(run())
}
