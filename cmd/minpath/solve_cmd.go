package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minpath/internal/config"
	"github.com/katalvlaran/minpath/internal/log"
	"github.com/katalvlaran/minpath/loader"
	"github.com/katalvlaran/minpath/minpath"
)

const pathSeparator = " -> "

type solveFlags struct {
	configPath string
	separator  string
	sweep      string
	longNames  bool
	format     string
	logLevel   string
}

// solveReport is the YAML form of a result.
type solveReport struct {
	Input  string   `yaml:"input"`
	Size   int      `yaml:"size"`
	Sum    int      `yaml:"sum"`
	Sweep  string   `yaml:"sweep"`
	Path   []string `yaml:"path"`
	Downs  int      `yaml:"downs"`
	Rights int      `yaml:"rights"`
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Solve a comma-separated matrix file",
		Long:  "Read a square matrix (one row per line, comma-separated integers) and print its minimal right/down path sum and one path producing it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			log.Configure(log.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})

			return runSolve(cmd.OutOrStdout(), cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fl.StringVar(&f.separator, "separator", ",", `value separator (one character, or "tab")`)
	fl.StringVar(&f.sweep, "sweep", minpath.RowMajor.String(), "fill order: rowmajor or antidiagonal")
	fl.BoolVar(&f.longNames, "long", false, "print Right/Down instead of R/D")
	fl.StringVar(&f.format, "format", config.FormatText, "output format: text or yaml")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

// resolveConfig applies defaults, then the config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, f solveFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("separator") {
		cfg.Separator = f.separator
	}
	if fl.Changed("sweep") {
		cfg.Sweep = f.sweep
	}
	if fl.Changed("long") {
		cfg.LongNames = f.longNames
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func runSolve(w io.Writer, cfg config.Config) error {
	logger := log.WithComponent("solve")

	sep, err := cfg.SeparatorRune()
	if err != nil {
		return err
	}
	sweep, err := minpath.ParseSweep(cfg.Sweep)
	if err != nil {
		return err
	}

	m, err := loader.ReadFile(cfg.Input, loader.Options{Separator: sep})
	if err != nil {
		return err
	}

	start := time.Now()
	opts := minpath.DefaultOptions()
	opts.Sweep = sweep
	sum, path, err := minpath.MinPath(m, &opts)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Info().
		Str("file", cfg.Input).
		Int("n", len(m)).
		Int("sum", sum).
		Stringer("sweep", sweep).
		Dur("elapsed", time.Since(start)).
		Msg("matrix solved")

	if cfg.Format == config.FormatYAML {
		return writeYAML(w, cfg, len(m), sum, sweep, path)
	}

	return writeText(w, cfg, sum, path)
}

func writeText(w io.Writer, cfg config.Config, sum int, path minpath.Path) error {
	joined := path.JoinSymbols(pathSeparator)
	if cfg.LongNames {
		joined = path.Join(pathSeparator)
	}
	_, err := fmt.Fprintf(w, "Minimal path sum in %q:\n  %d\nPath producing that sum:\n  %s\n", cfg.Input, sum, joined)

	return err
}

func writeYAML(w io.Writer, cfg config.Config, n, sum int, sweep minpath.Sweep, path minpath.Path) error {
	downs, rights := path.Counts()
	steps := make([]string, len(path))
	for i, d := range path {
		if cfg.LongNames {
			steps[i] = d.String()
		} else {
			steps[i] = string(d.Symbol())
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(solveReport{
		Input:  cfg.Input,
		Size:   n,
		Sum:    sum,
		Sweep:  sweep.String(),
		Path:   steps,
		Downs:  downs,
		Rights: rights,
	}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
