package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardkit/pkg/card"
)

func newFmtCmd() *cobra.Command {
	var (
		output    string
		indent    string
		assignIDs bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reserialize a card document canonically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseFile(args[0])
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				log.Warn().Str("kind", string(w.Kind)).Str("element", w.Element).Msg(w.Message)
			}

			if assignIDs {
				gen := func() string { return uuid.NewString() }
				if err := card.AssignIDs(gen).Decorate(res.Card); err != nil {
					return err
				}
			}

			var encoded []byte
			if indent == "" {
				encoded = res.Card.ToJSON()
			} else {
				encoded = res.Card.ToJSONIndent("", indent)
			}
			encoded = append(encoded, '\n')

			if output == "" {
				fmt.Print(string(encoded))
				return nil
			}
			return os.WriteFile(output, encoded, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation string, empty for compact output")
	cmd.Flags().BoolVar(&assignIDs, "assign-ids", false, "fill empty element ids with generated ones")
	return cmd
}
