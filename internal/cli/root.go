// Package cli implements the uprint command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/uprint/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

type options struct {
	verbosity int
	out       string
	open      func(path string) (io.WriteCloser, error)
}

func openOutput(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
}

// NewRootCmd builds the uprint command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{open: openOutput}
	root := &cobra.Command{
		Use:   "uprint",
		Short: "Render diagnostic lines the way firmware prints them",
		Long: `uprint renders space-separated diagnostic lines with the same rules a
device uses on its serial port. Lines go to stdout, or to --out, which may be
a file or a serial device node.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
	}
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	root.PersistentFlags().StringVarP(&opts.out, "out", "o", "", "Write lines to this file or device instead of stdout")

	root.AddCommand(newPrintCmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// output returns the destination for rendered lines and a function that
// releases it.
func (o *options) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if o.out == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := o.open(o.out)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	log.Debug().Str("path", o.out).Msg("Writing to file")
	return f, f.Close, nil
}

// releaseOutput runs release and keeps its error in *err unless an earlier
// error is already set.
func releaseOutput(err *error, release func() error) {
	if cerr := release(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", cerr)
	}
}
