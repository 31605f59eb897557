package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootOptions struct {
	output string
	jsonc  bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "chatsettings",
		Short:        "Decode and inspect chat settings documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("unknown output format %q (want json or yaml)", opts.output)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")
	cmd.PersistentFlags().BoolVar(&opts.jsonc, "jsonc", false, "accept comments and trailing commas")

	cmd.AddCommand(
		newDecodeCommand(opts),
		newValidateCommand(opts),
		newHistoryCommand(opts),
	)
	return cmd
}

type input struct {
	name string
	data []byte
}

// readInputs reads every named file, or stdin when none are given.
func readInputs(cmd *cobra.Command, paths []string) ([]input, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "<stdin>", data: data}}, nil
	}
	inputs := make([]input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: p, data: data})
	}
	return inputs, nil
}
