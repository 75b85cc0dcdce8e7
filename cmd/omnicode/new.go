package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"omnicode/internal/lang"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [flags] <lang> [path|-]",
		Short: "Write the starter template for a language",
		Long: `New writes the template a fresh editor tab starts with. The default
path is untitled.<ext>; "-" prints to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runNew,
	}
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	id := lang.ID(args[0])
	if !lang.IsKnown(id) {
		return fmt.Errorf("unknown language %q (see `omnicode languages`)", args[0])
	}
	path := lang.Filename("untitled", id)
	if len(args) == 2 {
		path = args[1]
	}
	content := lang.Template(id)
	if path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", path, id.Name())
	return nil
}
