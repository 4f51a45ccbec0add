// Package fake implements the fake data command: seeded person records,
// reference table import, and Lua generation scripts.
package fake

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/core/seed"
	"github.com/louisbranch/chance/internal/data"
	"github.com/louisbranch/chance/internal/data/sqlite"
	fakedata "github.com/louisbranch/chance/internal/fake"
	platformcmd "github.com/louisbranch/chance/internal/platform/cmd"
	"github.com/louisbranch/chance/internal/platform/logging"
	"github.com/louisbranch/chance/internal/platform/timeouts"
	"github.com/louisbranch/chance/internal/script"
)

// Modes accepted by -mode.
const (
	ModeRecords = "records"
	ModeImport  = "import"
	ModeScript  = "script"
)

// Config holds fake command configuration.
type Config struct {
	Seed    string `env:"CHANCE_SEED"`
	Count   int    `env:"CHANCE_COUNT" envDefault:"10"`
	Mode    string `env:"CHANCE_MODE" envDefault:"records"`
	DB      string `env:"CHANCE_DB"`
	Script  string `env:"CHANCE_SCRIPT"`
	Verbose bool   `env:"CHANCE_VERBOSE"`
}

// ParseConfig reads the environment and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed: a uint32 is used as-is, other text is hashed (empty = clock)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of records to generate")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode: records, import, script")
	fs.StringVar(&cfg.DB, "db", cfg.DB, "sqlite path for reference tables")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "lua script path for script mode")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeRecords:
		if c.Count < 0 {
			return fmt.Errorf("count must be non-negative, got %d", c.Count)
		}
	case ModeImport:
		if strings.TrimSpace(c.DB) == "" {
			return errors.New("import mode requires -db")
		}
	case ModeScript:
		if strings.TrimSpace(c.Script) == "" {
			return errors.New("script mode requires -script")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// SeedSpec turns the configured seed into a generator spec.
func SeedSpec(value string) seed.Spec {
	value = strings.TrimSpace(value)
	if value == "" {
		return seed.Derive()
	}
	if n, err := strconv.ParseUint(value, 10, 32); err == nil {
		return seed.Fixed(uint32(n))
	}
	return seed.Derive(seed.Text(value))
}

// Run executes the fake command, writing generated data to out and logs to
// errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	logger := logging.New(errOut, logging.Options{Verbose: cfg.Verbose})
	defer func() { _ = logger.Sync() }()

	var provider data.Provider = data.Static()
	if cfg.DB != "" {
		store, err := sqlite.Open(ctx, cfg.DB, sqlite.WithLogger(logger))
		if err != nil {
			return err
		}
		defer store.Close()

		if cfg.Mode == ModeImport {
			n, err := store.Import(ctx, data.Static())
			if err != nil {
				return err
			}
			logger.Info("import complete", zap.String("db", cfg.DB), zap.Int("tables", n))
			return nil
		}
		provider = store
	}

	g := chance.New(SeedSpec(cfg.Seed), chance.WithData(provider))
	if s, ok := g.Seed(); ok {
		logger.Debug("generator ready", zap.Uint32("seed", s), zap.String("mode", cfg.Mode))
	}

	switch cfg.Mode {
	case ModeScript:
		return runScript(ctx, g, cfg.Script, out, logger)
	default:
		return runRecords(ctx, g, cfg.Count, out)
	}
}

func runRecords(ctx context.Context, g *chance.Generator, count int, out io.Writer) error {
	faker := fakedata.New(g)
	enc := json.NewEncoder(out)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := faker.Person()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return nil
}

func runScript(ctx context.Context, g *chance.Generator, path string, out io.Writer, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Script)
	defer cancel()

	values, err := script.RunFile(ctx, g, path, script.WithLogger(logger))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("write value %d: %w", i, err)
		}
	}
	logger.Debug("script complete", zap.String("script", path), zap.Int("values", len(values)))
	return nil
}
