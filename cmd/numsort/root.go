package main

import (
	"fmt"
	"io"

	"github.com/amp-labs/numstring/errors"
	"github.com/amp-labs/numstring/logger"
	"github.com/amp-labs/numstring/numstr"
	"github.com/spf13/cobra"
)

type config struct {
	yaml      bool
	by        []string
	textOrder string
	reverse   bool
	logLevel  string
	logJSON   bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config{}

	cmd := &cobra.Command{
		Use:   "numsort",
		Short: "Sort lines or YAML records in natural number order",
		Long: `numsort reads values from stdin and writes them sorted so that numbers
compare by value ("2" before "10"), numbers come before words, and mixed
values such as "file10" compare part by part.

With --yaml the input is a sequence of mappings sorted by the --by keys,
in order of precedence.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(cfg.logLevel)
			if err != nil {
				return err
			}

			order, ok := numstr.ParseTextOrder(cfg.textOrder)
			if !ok {
				return fmt.Errorf("%w: unknown text order %q", errors.ErrArgument, cfg.textOrder)
			}

			log := logger.ConfigureLoggingWithOptions(logger.Options{
				Subsystem: "numsort",
				JSON:      cfg.logJSON,
				MinLevel:  level,
				Output:    stderr,
			})

			s := sorter{
				order:   order,
				reverse: cfg.reverse,
				logger:  log,
			}

			if cfg.yaml {
				return s.sortRecords(stdin, stdout, cfg.by)
			}

			return s.sortLines(stdin, stdout)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&cfg.yaml, "yaml", false, "read a YAML sequence of mappings instead of lines")
	flags.StringArrayVar(&cfg.by, "by", nil, "record key to sort by (repeatable, requires --yaml)")
	flags.StringVar(&cfg.textOrder, "text-order", "collated", "order of non-numeric parts: collated or ordinal")
	flags.BoolVarP(&cfg.reverse, "reverse", "r", false, "sort in descending order")
	flags.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.logJSON, "log-json", false, "write logs as JSON")

	return cmd
}
