package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"omnicode/internal/driver"
	"omnicode/internal/source"
	"omnicode/internal/ui"
	"omnicode/internal/workspace"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [files...]",
		Short: "Browse highlighted files with live diagnostics",
		Long: `View opens every file in its own tab. Without arguments a starter
JavaScript buffer is shown.`,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd, s, args)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("view needs a terminal; use `omnicode tokenize --format highlight` instead")
	}
	model := ui.NewViewerModel(cmd.Context(), ws, s.dark)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = program.Run()
	return err
}

// openWorkspace loads files into tabs. The default starter tab is dropped
// once at least one file is open.
func openWorkspace(cmd *cobra.Command, s *settings, files []string) (*workspace.Workspace, error) {
	ws := workspace.New(workspace.Options{Lint: s.lint, Memo: driver.NewMemo(0)})
	starter := ws.Active().ID
	opts := s.fileOptions()
	fileSet := source.NewFileSet()
	for _, path := range files {
		file, err := loadInput(cmd, fileSet, path)
		if err != nil {
			return nil, err
		}
		text := file.Text()
		ws.Create(opts.DetectLanguage(file.Path, text), filepath.Base(file.Path), text)
	}
	if len(files) > 0 {
		if err := ws.Close(starter); err != nil {
			return nil, err
		}
		if err := ws.Switch(ws.Tabs()[0].ID); err != nil {
			return nil, err
		}
	}
	return ws, nil
}
