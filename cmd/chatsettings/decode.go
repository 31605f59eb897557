package main

import (
	"fmt"

	"chatgogo/chatsettings/internal/decode"
	"chatgogo/chatsettings/internal/models"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDecodeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [files...]",
		Short: "Decode documents and print the records",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			failed := 0
			for _, in := range inputs {
				settings, err := decodeDocument(in.data, opts.jsonc)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", in.name, err)
					continue
				}
				out, err := render(settings, opts.output)
				if err != nil {
					return err
				}
				if len(inputs) > 1 && opts.output == outputYAML {
					fmt.Fprintln(cmd.OutOrStdout(), "---")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return failures(failed, len(inputs))
		},
	}
}

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files...]",
		Short: "Report whether each document decodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			failed := 0
			for _, in := range inputs {
				if _, err := decodeDocument(in.data, opts.jsonc); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", in.name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", in.name)
			}
			return failures(failed, len(inputs))
		},
	}
}

func decodeDocument(data []byte, jsonc bool) (models.ChatSettings, error) {
	if jsonc {
		return decode.DecodeChatSettingsJSONC(data)
	}
	return decode.DecodeChatSettings(data)
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d documents failed", failed, total)
}

// render encodes v as indented JSON or as block-style YAML. YAML goes
// through the JSON form so both outputs share field names.
func render(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil || format != outputYAML {
		return data, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}
	return trimNewline(out), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
