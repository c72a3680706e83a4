package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/OliverKris/colt-express/config"
	"github.com/OliverKris/colt-express/game"
	"github.com/OliverKris/colt-express/setup"
	"github.com/OliverKris/colt-express/telemetry"
)

const serviceName = "colt-express"

type options struct {
	players int
	seed    string
	code    string
	share   bool
	verbose bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	opts := options{}
	flag.IntVar(&opts.players, "players", cfg.Players, "number of players (2-6)")
	flag.StringVar(&opts.seed, "seed", "", "random seed for reproducibility (default: random)")
	flag.StringVar(&opts.code, "code", "", "rebuild the train from a setup code")
	flag.BoolVar(&opts.share, "share", false, "print a setup code for the generated train")
	flag.BoolVar(&opts.verbose, "v", false, "verbose output")
	flag.Parse()

	if err := execute(context.Background(), cfg, opts); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func execute(ctx context.Context, cfg *config.Config, opts options) error {
	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", serviceName, err)
		}
	}()

	return run(ctx, cfg, opts, os.Stdout)
}

func run(ctx context.Context, cfg *config.Config, opts options, out io.Writer) error {
	players := opts.players
	var seed *int64

	if opts.code != "" {
		p, err := setup.Decode(cfg.SetupSecret, opts.code)
		if err != nil {
			return err
		}
		players = p.Players
		seed = &p.Seed
	} else if opts.seed != "" {
		s, err := strconv.ParseInt(opts.seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", opts.seed, err)
		}
		seed = &s
	}

	var genOpts []game.Option
	if opts.verbose {
		genOpts = append(genOpts, game.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	gen, err := game.NewGenerator(genOpts...)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(serviceName).Start(ctx, "GenerateTrain",
		trace.WithAttributes(attribute.Int("players", players)),
	)
	train, used, err := gen.GenerateWithSeed(players, seed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return err
	}
	span.SetAttributes(
		attribute.Int64("seed", used),
		attribute.Int("cars", train.Len()),
		attribute.Int("loot.total", train.TotalValue()),
	)
	span.End()

	fmt.Fprintln(out, train)
	fmt.Fprintf(out, "Total loot: $%d\n", train.TotalValue())
	fmt.Fprintf(out, "Seed: %d\n", used)

	if opts.share {
		if cfg.EphemeralSecret {
			log.Println("WARNING: setup code is signed with a temporary secret; set COLT_SETUP_SECRET to share it")
		}
		code, err := setup.Encode(cfg.SetupSecret, setup.Params{Players: players, Seed: used}, cfg.SetupTTL, cfg.SetupIssuer)
		if err != nil {
			return fmt.Errorf("encode setup code: %w", err)
		}
		fmt.Fprintf(out, "Setup code: %s\n", code)
	}
	return nil
}
