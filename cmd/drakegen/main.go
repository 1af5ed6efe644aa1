// Command drakegen generates C source from a declarative job document.
//
// A job file describes scalar and matrix functions over named parameters:
//
//	function "f" {
//	  parameters = ["x", "y"]
//	  expression = x * x + 2 * y
//	}
//
// drakegen loads the document, runs every block through the code
// generators in file order, and writes one compilable C listing (with a
// math.h include) to the output path or stdout. Generation happens fully
// in memory; on any failure nothing is written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RuslanAgishev/drake/codegen"
	"github.com/RuslanAgishev/drake/internal/ctxlog"
	"github.com/RuslanAgishev/drake/internal/jobfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "drakegen:", err)
		os.Exit(1)
	}
}

// config holds the validated command line.
type config struct {
	jobPath   string
	outPath   string
	logLevel  string
	logFormat string
}

// run is the testable body of main: parse the command line, load the job,
// generate, write. stdout receives generated source when no -o is given;
// logW receives the log stream.
func run(args []string, stdout, logW io.Writer) error {
	cfg, err := parseArgs(args, logW)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.logLevel, cfg.logFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	job, err := jobfile.Load(ctx, cfg.jobPath)
	if err != nil {
		return err
	}

	src, err := generate(ctx, job)
	if err != nil {
		return err
	}

	if cfg.outPath == "" || cfg.outPath == "-" {
		_, err = io.WriteString(stdout, src)
		return err
	}
	if err := os.WriteFile(cfg.outPath, []byte(src), 0o644); err != nil {
		return err
	}
	logger.Info("wrote output", "path", cfg.outPath, "bytes", len(src))

	return nil
}

// parseArgs processes the command line. The job path may come from -job or
// as the sole positional argument.
func parseArgs(args []string, output io.Writer) (config, error) {
	flagSet := flag.NewFlagSet("drakegen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `drakegen - generate C evaluators from symbolic job documents.

Usage:
  drakegen [options] [JOB_PATH]

Arguments:
  JOB_PATH
    Path to a .hcl job document (alternative to -job).

Options:
`)
		flagSet.PrintDefaults()
	}

	jobFlag := flagSet.String("job", "", "Path to the job document.")
	outFlag := flagSet.String("o", "", "Output file path. Empty or '-' writes to stdout.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		return config{}, err
	}

	path := *jobFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return config{}, errors.New("no job document given")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return config{}, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return config{}, errors.New("invalid log-level: must be 'debug', 'info', 'warn' or 'error'")
	}

	return config{
		jobPath:   path,
		outPath:   *outFlag,
		logLevel:  logLevel,
		logFormat: logFormat,
	}, nil
}

// generate emits every request of the job in document order and assembles
// one C listing: the math.h include, then a blank line before each
// function group.
func generate(ctx context.Context, job *jobfile.Job) (string, error) {
	logger := ctxlog.FromContext(ctx)

	var sb strings.Builder
	sb.WriteString("#include <math.h>\n")
	for _, fn := range job.Functions {
		var (
			src  string
			meta codegen.Meta
			err  error
		)
		if fn.Matrix != nil {
			src, meta, err = codegen.BatchFunction(fn.Name, fn.Parameters, fn.Matrix)
		} else {
			src, meta, err = codegen.ScalarFunction(fn.Name, fn.Parameters, fn.Expression)
		}
		if err != nil {
			return "", fmt.Errorf("generate %s %q: %w", fn.BlockType(), fn.Name, err)
		}

		attrs := []any{"name", fn.Name, "kind", fn.BlockType(), "inputs", meta.InputSize}
		if meta.Output != nil {
			attrs = append(attrs, "rows", meta.Output.Rows, "cols", meta.Output.Cols)
		}
		logger.Info("generated function", attrs...)

		sb.WriteByte('\n')
		sb.WriteString(src)
	}

	return sb.String(), nil
}
