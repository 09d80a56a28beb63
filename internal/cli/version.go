package cli

import (
	"github.com/bjaus/uprint"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return uprint.Fprint(cmd.OutOrStdout(),
				uprint.Str("uprint"), uprint.Str(version),
				uprint.Str("(commit:"), uprint.Str(commit), uprint.Unspaced(uprint.Char(')')))
		},
	}
}
