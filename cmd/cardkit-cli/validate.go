package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cardkit "github.com/goliatone/go-cardkit"
	"github.com/goliatone/go-cardkit/pkg/card"
)

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <file...>",
		Short: "Parse card documents and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, path := range args {
				res, err := parseFile(path)
				if err != nil {
					log.Error().Str("file", path).Err(err).Msg("fatal parse error")
					failures++
					continue
				}
				for _, w := range res.Warnings {
					log.Warn().Str("file", path).Str("kind", string(w.Kind)).Str("element", w.Element).Msg(w.Message)
				}
				if strict && len(res.Warnings) > 0 {
					failures++
					continue
				}
				log.Info().Str("file", path).Int("warnings", len(res.Warnings)).Int("elements", len(res.Card.Body)).Msg("ok")
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
	return cmd
}

func parseFile(path string) (*card.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return cardkit.ParseYAML(data)
	default:
		return cardkit.ParseJSON(data)
	}
}
