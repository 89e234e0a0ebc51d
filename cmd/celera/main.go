// Command celera normalizes a roster export and runs matchmaking from the shell.
//
//	celera normalize -in directorio.csv -out normalizado.csv
//	celera match -in directorio.csv -name "Ana Pérez"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/celera/directory/pkg/matchmaking"
	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/normalize"
	"github.com/celera/directory/pkg/repository/csvfile"
	"github.com/celera/directory/pkg/roster"
)

var errUsage = errors.New("uso: celera normalize|match [flags]")

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(context.Background(), os.Args[1:], os.Stdout, log); err != nil {
		log.Error().Err(err).Msg("celera")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, log zerolog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "normalize":
		return normalizeCmd(ctx, args[1:], stdout, log)
	case "match":
		return matchCmd(ctx, args[1:], stdout, log)
	default:
		return fmt.Errorf("%w: comando desconocido %q", errUsage, args[0])
	}
}

func load(ctx context.Context, in, rulesFile string, log zerolog.Logger) (member.Table, *normalize.Normalizer, error) {
	rules, err := normalize.LoadRules(rulesFile)
	if err != nil {
		return member.Table{}, nil, err
	}
	norm, err := normalize.New(rules)
	if err != nil {
		return member.Table{}, nil, err
	}
	t, err := csvfile.NewStore(in, log).Snapshot(ctx)
	if err != nil {
		return member.Table{}, nil, err
	}
	return t, norm, nil
}

func normalizeCmd(ctx context.Context, args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	in := fs.String("in", "directorio.csv", "roster CSV")
	out := fs.String("out", "", "output CSV (stdout when empty)")
	rules := fs.String("rules", os.Getenv("CELERA_RULES_FILE"), "YAML rule overrides")
	if err := fs.Parse(args); err != nil {
		return err
	}
	t, norm, err := load(ctx, *in, *rules, log)
	if err != nil {
		return err
	}
	augmented := roster.Augment(t, norm)

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := member.WriteCSV(w, augmented); err != nil {
		return err
	}
	log.Info().Int("rows", len(augmented.Rows)).Str("in", *in).Msg("roster normalized")
	return nil
}

func matchCmd(ctx context.Context, args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	in := fs.String("in", "directorio.csv", "roster CSV")
	name := fs.String("name", "", "member name, as in the roster")
	limit := fs.Int("limit", 15, "maximum matches")
	rules := fs.String("rules", os.Getenv("CELERA_RULES_FILE"), "YAML rule overrides")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name es obligatorio", errUsage)
	}
	t, norm, err := load(ctx, *in, *rules, log)
	if err != nil {
		return err
	}
	cfg := matchmaking.DefaultConfig()
	cfg.Limit = *limit
	res := matchmaking.NewService(cfg, log).FindMatches(ctx, roster.Ingest(t, norm), *name)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if res.Status != matchmaking.StatusOK {
		return fmt.Errorf("matchmaking: %s: %s", res.Status, res.Detail)
	}
	return nil
}
