package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"weiqi/communication"
	"weiqi/communication/client"
	"weiqi/communication/server"
	"weiqi/engine"
	"weiqi/experiments"
	"weiqi/game"
	"weiqi/meta"
	"weiqi/player"
	"weiqi/searcher"
	"weiqi/searcher/agent"
)

type config struct {
	mode       string
	color      string
	depth      int
	addr       string
	watch      string
	url        string
	experiment string
	games      int
	out        string
	debug      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play, selfplay, serve, remote or experiment")
	flag.StringVar(&cfg.color, "color", "black", "Human player's color (play and remote modes)")
	flag.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "Search depth in plies")
	flag.StringVar(&cfg.addr, "addr", meta.AGENT_ADDR, "Listen address of the agent server (serve mode)")
	flag.StringVar(&cfg.watch, "watch", "", "Serve spectator updates on this address (selfplay mode), e.g. "+meta.WATCH_ADDR)
	flag.StringVar(&cfg.url, "url", "http://localhost"+meta.AGENT_ADDR, "Agent server URL (remote mode)")
	flag.StringVar(&cfg.experiment, "experiment", "depth", fmt.Sprintf("Experiment to run, one of %v", experiments.Names()))
	flag.IntVar(&cfg.games, "games", experiments.NumGames, "Games per match up (experiment mode)")
	flag.StringVar(&cfg.out, "out", "experiments", "Output directory of experiment records")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("mode", cfg.mode).Msg("exiting")
	}
}

func run(ctx context.Context, cfg config) error {
	if cfg.depth < 1 || cfg.depth > meta.MAX_MOVES {
		return fmt.Errorf("depth must be between 1 and %d", meta.MAX_MOVES)
	}
	computer := func() agent.Agent {
		return agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(cfg.depth), searcher.WithMetrics()))
	}

	switch cfg.mode {
	case "play":
		return playHuman(ctx, cfg.color, computer())
	case "remote":
		return playHuman(ctx, cfg.color, client.NewRemoteAgent(cfg.url))
	case "selfplay":
		return selfPlay(ctx, cfg.watch, computer(), computer())
	case "serve":
		return serve(ctx, cfg.addr, agent.NewServer(computer()), nil)
	case "experiment":
		exp, err := experiments.Lookup(cfg.experiment)
		if err != nil {
			return err
		}
		dir, err := experiments.Run(ctx, exp, cfg.out, cfg.games)
		if err != nil {
			return err
		}
		fmt.Printf("Records written to %s\n", dir)
		return nil
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func playHuman(ctx context.Context, color string, opponent agent.Agent) error {
	humanColor, err := game.ParseColor(color)
	if err != nil {
		return err
	}

	human := player.NewPlayer(os.Stdin, os.Stdout)
	black, white := agent.Agent(human), opponent
	if humanColor == game.White {
		black, white = white, black
	}

	e := engine.NewLocalEngine(black, white, engine.WithObserver(engine.ObserverFunc(func(u communication.Update) {
		if u.Player != humanColor.String() {
			if u.Move == nil {
				fmt.Printf("%s passes\n", u.Player)
			} else {
				fmt.Printf("%s plays %s\n", u.Player, u.Move)
			}
		}
		if u.GameOver {
			fmt.Printf("\nGame over after %d moves\n%s\n", u.Position.TotalMoves, u.Board)
		}
	})))
	_, _, err = e.Run(ctx)
	return err
}

func selfPlay(ctx context.Context, watch string, black, white agent.Agent) error {
	var opts []engine.Option
	var hub *server.Hub
	if watch != "" {
		hub = server.NewHub()
		opts = append(opts, engine.WithObserver(hub))
	}
	e := engine.NewLocalEngine(black, white, opts...)

	if hub == nil {
		_, _, err := e.Run(ctx)
		fmt.Printf("%s\n", e.Position.Current)
		return err
	}

	log.Info().Str("addr", watch).Str("game", e.ID()).Msg("spectators can connect on /ws")
	return serve(ctx, watch, hub.Handler(), func(ctx context.Context) error {
		defer hub.Close()
		_, _, err := e.Run(ctx)
		fmt.Printf("%s\n", e.Position.Current)
		return err
	})
}

// serve runs handler on addr until ctx is done or work returns.
func serve(ctx context.Context, addr string, handler http.Handler, work func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{Addr: addr, Handler: handler}
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		return srv.Shutdown(shutdownCtx)
	})
	if work != nil {
		g.Go(func() error {
			defer cancel()
			return work(ctx)
		})
	}
	return g.Wait()
}
