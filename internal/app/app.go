// Package app wires the cmlgen command: flags, logging, job file loading and
// document output.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reoring/gocml"
	"github.com/reoring/gocml/convention"
	"github.com/reoring/gocml/conventions/compchem"
	"github.com/reoring/gocml/jobfile"
)

// App runs one cmlgen invocation.
type App struct {
	cfg    *Config
	logger *slog.Logger
	stdout io.Writer
}

// New creates an App. Logs go to stderr.
func New(cfg *Config, stdout, stderr io.Writer) *App {
	return &App{
		cfg:    cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, stderr),
		stdout: stdout,
	}
}

// Main parses args, runs the app and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseFlags(args, stderr)
	if errors.Is(err, ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "cmlgen:", err)
		return 2
	}
	if err := New(cfg, stdout, stderr).Run(); err != nil {
		fmt.Fprintln(stderr, "cmlgen:", err)
		return 1
	}
	return 0
}

// Run executes the configured action.
func (a *App) Run() error {
	if a.cfg.PrintConvention != "" {
		return a.printConvention()
	}

	a.logger.Debug("loading job file", "path", a.cfg.In, "format", a.cfg.Format)
	f, err := jobfile.Load(a.cfg.In, a.cfg.Format)
	if err != nil {
		return err
	}
	opts := []gocml.Option{gocml.WithLogger(a.logger)}
	if a.cfg.Indent {
		opts = append(opts, gocml.WithIndent("", "  "))
	}
	doc, err := f.Build(opts...)
	if err != nil {
		return err
	}
	return a.write(doc)
}

func (a *App) write(doc *compchem.Document) (err error) {
	var w io.Writer = a.stdout
	if a.cfg.Out != "-" {
		file, ferr := os.Create(a.cfg.Out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}
	if _, err = doc.Write(w); err != nil {
		return err
	}
	if a.cfg.Out == "-" {
		_, err = io.WriteString(w, "\n")
		return err
	}
	a.logger.Info("document written", "path", a.cfg.Out, "warnings", len(doc.Warnings()))
	return nil
}

func (a *App) printConvention() error {
	var (
		b   []byte
		err error
	)
	if a.cfg.PrintConvention == "yaml" {
		b, err = convention.MarshalYAML(compchem.Convention())
	} else {
		b, err = convention.MarshalJSON(compchem.Convention())
		b = append(b, '\n')
	}
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(b)
	return err
}
