package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"omnicode/internal/lang"
	"omnicode/internal/lexer"
	"omnicode/internal/lint"
	"omnicode/internal/runner"
)

type languageInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Scanner   string `json:"scanner"`
	Rules     bool   `json:"rules"`
	Runnable  bool   `json:"runnable"`
}

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE:  runLanguages,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func collectLanguages() []languageInfo {
	known := lang.Known()
	out := make([]languageInfo, 0, len(known))
	for _, id := range known {
		out = append(out, languageInfo{
			ID:        string(id),
			Name:      id.Name(),
			Extension: lang.Extension(id),
			Scanner:   lexer.VariantFor(id).String(),
			Rules:     lint.HasRuleSet(id),
			Runnable:  runner.Supported(id),
		})
	}
	return out
}

func runLanguages(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	infos := collectLanguages()
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "pretty":
		fmt.Fprintf(out, "%-12s %-12s %-6s %-8s %-5s %s\n", "ID", "NAME", "EXT", "SCANNER", "RULES", "RUN")
		for _, l := range infos {
			fmt.Fprintf(out, "%-12s %-12s %-6s %-8s %-5s %s\n",
				l.ID, l.Name, l.Extension, l.Scanner, yesNo(l.Rules), yesNo(l.Runnable))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
