package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datebox/internal/tui"
	"github.com/alexisbeaulieu97/datebox/internal/validation"
)

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a date interactively",
		Long:  `Launch the interactive editor hosting a date box configured by the options document.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal() {
		return newCommandError("edit", "starting the editor", errors.New("stdin and stdout must be a terminal"), "Use 'datebox parse <text>' for non-interactive use.")
	}

	s, err := newSession(cmd, "edit", flags)
	if err != nil {
		return err
	}

	title := s.cfg.Name
	if title == "" {
		title = "DateBox"
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = s.cfg.ScreenWidth()
	}

	model, err := tui.NewModel(tui.Options{
		Box:   s.boxConfig(),
		Title: title,
		Width: width,
		Rules: validation.ParseRules(s.cfg.Rules),
	})
	if err != nil {
		return newCommandError("edit", "creating date box", err, "Check the option values in the options document.")
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return newCommandError("edit", "running the editor", err, "Re-run with --verbose for details.")
	}

	if m, ok := final.(tui.Model); ok {
		box := m.Box()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", valueOrFallback(box.State().SubmitValue, "(empty)"))
	}
	return nil
}
