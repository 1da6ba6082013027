package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardkit/pkg/card"
)

func newNewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a starter card interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers := struct {
				Version  string
				Title    string
				ImageURL string
			}{}

			questions := []*survey.Question{
				{
					Name: "version",
					Prompt: &survey.Select{
						Message: "Schema version:",
						Options: []string{"1.0", "1.2", "1.3", "1.5"},
						Default: card.SupportedVersion,
					},
				},
				{
					Name:     "title",
					Prompt:   &survey.Input{Message: "Title text:"},
					Validate: survey.Required,
				},
				{
					Name:   "imageurl",
					Prompt: &survey.Input{Message: "Image URL (optional):"},
				},
			}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			c := card.New()
			c.Version = answers.Version
			title := card.NewTextBlock(answers.Title)
			title.Size = card.TextSizeLarge
			title.Weight = card.TextWeightBolder
			c.Body = append(c.Body, title)
			if answers.ImageURL != "" {
				c.Body = append(c.Body, card.NewImage(answers.ImageURL))
			}

			encoded := append(c.ToJSONIndent("", "  "), '\n')
			if output == "" {
				fmt.Print(string(encoded))
				return nil
			}
			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return err
			}
			log.Info().Str("file", output).Msg("card written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
