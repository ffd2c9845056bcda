package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/reoring/gocml/jobfile"
)

// Config holds everything one run needs.
type Config struct {
	In              string // job file
	Out             string // output path, "-" for stdout
	Format          jobfile.Format
	Indent          bool
	PrintConvention string // "json" or "yaml"; skips document generation

	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

// ErrHelp is returned by ParseFlags when -h was requested.
var ErrHelp = flag.ErrHelp

// ParseFlags reads the command line into a Config.
func ParseFlags(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("cmlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfg    Config
		format string
	)
	fs.StringVar(&cfg.In, "in", "", "job file (.json, .yaml, .yml or .hcl)")
	fs.StringVar(&cfg.Out, "o", "-", "output file, - for stdout")
	fs.StringVar(&format, "format", string(jobfile.FormatAuto), "job file format: auto, json, yaml or hcl")
	fs.BoolVar(&cfg.Indent, "indent", false, "indent the generated markup")
	fs.StringVar(&cfg.PrintConvention, "print-convention", "", "print the compchem convention descriptor as json or yaml and exit")
	fs.TextVar(&cfg.LogLevel, "log-level", slog.LevelInfo, "log level: debug, info, warn or error, optionally with an offset such as warn+2")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "cmlgen writes a simple compchem CML document from a job file.\n\nUsage:\n  cmlgen -in job.yaml [-o out.cml] [-indent]\n  cmlgen -print-convention json\n\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Format = jobfile.Format(format)
	return NewConfig(cfg)
}

// NewConfig validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.PrintConvention {
	case "":
		if cfg.In == "" {
			return nil, errors.New("-in is required")
		}
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown convention format %q", cfg.PrintConvention)
	}
	switch cfg.Format {
	case "", jobfile.FormatAuto, jobfile.FormatJSON, jobfile.FormatYAML, jobfile.FormatHCL:
	default:
		return nil, fmt.Errorf("unknown job file format %q", cfg.Format)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.Out == "" {
		cfg.Out = "-"
	}
	return &cfg, nil
}
