package cli

import (
	"fmt"

	"github.com/bjaus/uprint"
	"github.com/bjaus/uprint/internal/logging"
	"github.com/bjaus/uprint/internal/script"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		format string
		check  bool
	)
	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Render the lines of one or more scripts",
		Long: `Render the lines of one or more scripts in order.

A script is a YAML, TOML or JSON document with a list of lines:

  lines:
    - args: ["Current:", {units: {value: 5, label: mA}}]
    - args: ["[", {unspaced: 304}, "]"]

The format comes from the file extension unless --format is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger := logging.Logger("run")
			var f script.Format
			if format != "" {
				if f, err = script.ParseFormat(format); err != nil {
					return err
				}
			}

			scripts := make([]*script.Script, len(args))
			for i, path := range args {
				s, err := script.Load(path, f)
				if err != nil {
					return err
				}
				if err := s.Validate(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Info().Str("path", path).Int("lines", len(s.Lines)).Msg("Loaded script")
				scripts[i] = s
			}
			if check {
				return nil
			}

			w, release, err := opts.output(cmd)
			if err != nil {
				return err
			}
			defer releaseOutput(&err, release)
			tw := uprint.NewWriter(w)
			for i, s := range scripts {
				if err := s.Run(tw); err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				if err := tw.Err(); err != nil {
					return fmt.Errorf("write: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Script format (yaml, toml, json)")
	cmd.Flags().BoolVar(&check, "check", false, "Validate the scripts without rendering")
	return cmd
}
