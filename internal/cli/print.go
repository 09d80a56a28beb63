package cli

import (
	"fmt"
	"strings"

	"github.com/bjaus/uprint"
	"github.com/bjaus/uprint/internal/logging"
	"github.com/bjaus/uprint/internal/script"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPrintCmd(opts *options) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "print [ARG...]",
		Short: "Render the arguments as one line",
		Long: `Render the arguments as one line.

Integers and booleans are rendered as numbers and booleans, anything else as
text. An argument written as a YAML flow mapping selects a renderer:

  uprint print Current: '{units: {value: 5, label: mA}}'
  uprint print '[' '{unspaced: 304}' ']'
  uprint print Foo '{sep: comma}' Bar
  uprint print reg '{hex: 48879}' '{binary: 5}'`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger := logging.Logger("print")
			values := make([]any, len(args))
			for i, a := range args {
				if raw {
					values[i] = a
					continue
				}
				v, err := parseArg(a)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				values[i] = v
			}
			rs, err := script.Args(values)
			if err != nil {
				return err
			}

			w, release, err := opts.output(cmd)
			if err != nil {
				return err
			}
			defer releaseOutput(&err, release)
			logger.Debug().Int("args", len(rs)).Msg("Rendering line")
			return uprint.Fprint(w, rs...)
		},
	}
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Render every argument as plain text")
	return cmd
}

// parseArg reads a command-line argument. Integer and boolean scalars keep
// their type, flow mappings are decoded for [script.Arg], and everything
// else is text.
func parseArg(s string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil || len(doc.Content) == 0 {
		if strings.HasPrefix(s, "{") {
			return nil, fmt.Errorf("%w: malformed mapping %q", script.ErrInvalidArg, s)
		}
		return s, nil
	}
	node := doc.Content[0]
	switch {
	case node.Kind == yaml.MappingNode && node.Style&yaml.FlowStyle != 0:
	case node.Kind == yaml.ScalarNode && (node.Tag == "!!int" || node.Tag == "!!bool"):
	default:
		return s, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", script.ErrInvalidArg, s, err)
	}
	return v, nil
}
