package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	_ "github.com/g-m-twostay/ordset/Sets/ArraySet"
	_ "github.com/g-m-twostay/ordset/Sets/BTreeSet"
	_ "github.com/g-m-twostay/ordset/Sets/LLRBSet"
	_ "github.com/g-m-twostay/ordset/Sets/RBTreeSet"
	_ "github.com/g-m-twostay/ordset/Trees"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("ordset failed", "err", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "ordset",
		Usage:   "exercise ordered sets of int32 with rank and select",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "set implementation to use (see the backends command)",
				Value:   "ostree",
				EnvVars: []string{"ORDSET_BACKEND"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"ORDSET_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "insert 1, 5, 2, 4, 3 and print the basic queries",
			Action: runDemo,
		},
		{
			Name:      "run",
			Usage:     "apply operations in order and print the result of each",
			ArgsUsage: "<op>... (insert:N delete:N member:N pred:N rank:N select:J size)",
			Action:    runOps,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "script",
					Aliases: []string{"f"},
					Usage:   "read whitespace separated operations from a file, - for stdin",
				},
			},
		},
		{
			Name:      "dump",
			Usage:     "insert values into a tree and print its shape",
			ArgsUsage: "<value>...",
			Action:    runDump,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "bst",
					Usage: "use the plain BST instead of the order-statistics tree",
				},
			},
		},
		{
			Name:   "backends",
			Usage:  "list the available set implementations",
			Action: runBackends,
		},
		{
			Name:   "bench",
			Usage:  "time a seeded random workload against every backend",
			Action: runBench,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "n",
					Usage: "number of inserts",
					Value: 100000,
				},
				&cli.IntFlag{
					Name:  "queries",
					Usage: "number of member, rank and select queries",
					Value: 1000,
				},
				&cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed of the workload",
				},
				&cli.StringSliceFlag{
					Name:  "only",
					Usage: "restrict to these backends",
				},
				&cli.BoolFlag{
					Name:  "parallel",
					Usage: "run the backends at the same time, one goroutine each",
				},
			},
		},
	}
	return app
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
