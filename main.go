package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/xeptore/filesize/config"
	"github.com/xeptore/filesize/constants"
	"github.com/xeptore/filesize/log"
	"github.com/xeptore/filesize/render"
	"github.com/xeptore/filesize/size"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitParse      = 2
	exitOverflow   = 3
	exitConfig     = 4
	exitUnexpected = 10
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.NewDefault(stderr)

	if err := godotenv.Load(); nil != err {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error().Err(err).Msg("Failed to load .env file")
			return exitConfig
		}
		logger.Debug().Msg(".env file was not found")
	} else {
		logger.Debug().Msg(".env file was loaded")
	}

	if err := newApp(args, stdout, stderr).Run(ctx, args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			return exitUnexpected
		}

		var exitCode exitCodeError
		if errors.As(err, &exitCode) {
			return int(exitCode)
		}

		logger.Error().Err(err).Msg("Application exited with error")
		return exitUnexpected
	}

	return exitOK
}

type exitCodeError int

func (e exitCodeError) Error() string {
	return "error with exit code: " + strconv.Itoa(int(e))
}

func newApp(args []string, stdout, stderr io.Writer) *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:      constants.AppName,
		Version:   constants.Version,
		Usage:     "Convert a file size into bytes, kilobytes, megabytes and gigabytes",
		ArgsUsage: "<filesize>",
		Description: "<filesize> is a non-negative integer and one of the units b, kb, mb, gb,\n" +
			"separated by whitespace and passed as a single argument, e.g. \"1500 kb\".\n" +
			"Units are decimal: 1 kb = 1000 b.",
		Metadata: map[string]any{
			"compiled_at": constants.CompileTime,
		},
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Config file path (default: " + config.DefaultFilename + " if present)",
				Sources: cli.EnvVars("FILESIZE_CONFIG"),
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json or table",
				Sources: cli.EnvVars("FILESIZE_OUTPUT"),
			},
			//nolint:exhaustruct
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error, fatal or panic",
				Sources: cli.EnvVars("FILESIZE_LOG_LEVEL"),
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			printUsage(stderr)
			return exitCodeError(exitUsage)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return convert(ctx, cmd, args, stdout, stderr)
		},
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: %s <filesize>\n", constants.AppName)
}

func convert(_ context.Context, cmd *cli.Command, args []string, stdout, stderr io.Writer) error {
	logger := log.NewDefault(stderr)

	conf, err := config.Load(cmd.String("config"))
	if nil != err {
		logger.Error().Err(err).Msg("Failed to load config")
		return exitCodeError(exitConfig)
	}

	overrides := config.Config{
		Log: config.Log{
			Level:  cmd.String("log-level"),
			Format: "",
		},
		Output: config.Output{
			Format: cmd.String("output"),
			Color:  lo.Ternary(cmd.Bool("no-color"), "never", ""),
		},
	}
	if err := conf.Override(overrides); nil != err {
		logger.Error().Err(err).Msg("Invalid command line options")
		return exitCodeError(exitConfig)
	}

	logger = log.FromConfig(stderr, conf.Log)
	logger.Debug().Dict("config", conf.ToDict()).Msg("Config loaded")

	var input string
	switch n := cmd.Args().Len(); {
	case n > 0:
		if n > 1 {
			logger.Debug().Strs("args", cmd.Args().Tail()).Msg("Ignoring extra arguments")
		}
		input = cmd.Args().First()
	default:
		// The command line parser drops blank arguments, but a blank input
		// is still an input.
		blank, ok := blankArg(args)
		if !ok {
			printUsage(stderr)
			return exitCodeError(exitUsage)
		}
		input = blank
	}

	q, err := size.Parse(input)
	if nil != err {
		logger.Debug().Err(err).Str("input", input).Msg("Failed to parse input")
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeError(exitParse)
	}
	logger.Debug().Uint64("value", q.Value).Stringer("unit", q.Unit).Msg("Input parsed")

	sizes, err := size.Convert(q)
	if nil != err {
		if errors.Is(err, size.ErrOverflow) {
			logger.Debug().Err(err).Str("input", input).Msg("Conversion overflowed")
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCodeError(exitOverflow)
		}

		return fmt.Errorf("convert %q: %w", input, err)
	}

	format, err := render.ParseFormat(conf.Output.Format)
	if nil != err {
		return fmt.Errorf("parse output format: %v", err)
	}

	opts := render.Options{
		Format: format,
		Color:  useColor(conf.Output.Color, stdout),
	}
	if err := render.Write(stdout, q, sizes, opts); nil != err {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

var valueFlags = []string{
	"--config", "-config",
	"--output", "-output", "-o",
	"--log-level", "-log-level",
}

// blankArg returns the first whitespace-only positional argument in args,
// skipping the program name and the values of flags that take one.
func blankArg(args []string) (string, bool) {
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return lo.Find(args[i+1:], func(a string) bool { return strings.TrimSpace(a) == "" })
		}
		if lo.Contains(valueFlags, a) {
			i++
			continue
		}
		if strings.TrimSpace(a) == "" {
			return a, true
		}
	}

	return "", false
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	case "auto":
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		panic("invalid color mode: " + mode)
	}
}
