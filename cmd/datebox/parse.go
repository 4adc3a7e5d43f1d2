package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
)

type parseOptions struct {
	jsonOutput bool
}

type parseResult struct {
	Input    string   `json:"input"`
	Outcome  string   `json:"outcome"`
	Text     string   `json:"text"`
	Value    string   `json:"value"`
	Submit   string   `json:"submit"`
	Valid    bool     `json:"valid"`
	Validity string   `json:"validity"`
	Message  string   `json:"message,omitempty"`
	Rules    []string `json:"failedRules,omitempty"`
}

func newParseCmd(flags *rootFlags) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Type each text into a box and report what it commits",
		Long: `Feed each argument to a headless date box in order, as if typed and
committed, and report the outcome, stored value and validation state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, flags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, flags *rootFlags, opts *parseOptions, inputs []string) error {
	s, err := newSession(cmd, "parse", flags)
	if err != nil {
		return err
	}

	box, err := s.newBox()
	if err != nil {
		return newCommandError("parse", "creating date box", err, "Check the option values in the options document.")
	}
	defer func() { _ = box.Dispose() }()

	results := make([]parseResult, 0, len(inputs))
	for _, input := range inputs {
		s.report = nil
		outcome, err := box.Input(input, "cli")
		if err != nil {
			return newCommandError("parse", fmt.Sprintf("entering %q", input), err, "This is unexpected; please report it.")
		}
		results = append(results, s.result(box, input, outcome))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	invalid := 0
	for _, r := range results {
		status := "ok"
		if !r.Valid {
			status = r.Validity
			invalid++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-12s %-24s %s\n", fmt.Sprintf("%q", r.Input), r.Outcome, valueOrFallback(r.Text, "(empty)"), status)
		if r.Message != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r.Message)
		}
		for _, rule := range r.Rules {
			fmt.Fprintf(cmd.OutOrStdout(), "  rule: %s\n", rule)
		}
	}

	if invalid > 0 {
		return newCommandError("parse", fmt.Sprintf("%d of %d inputs are invalid", invalid, len(results)), errors.New("validation failed"), "Use --json for the full report.")
	}
	return nil
}

func (s *session) result(box *datebox.DateBox, input string, outcome datebox.Outcome) parseResult {
	state := box.State()
	r := parseResult{
		Input:    input,
		Outcome:  outcome.String(),
		Text:     box.Text(),
		Value:    state.Value.String(),
		Submit:   state.SubmitValue,
		Valid:    state.IsValid,
		Validity: box.Validity().String(),
		Rules:    s.failedRules(),
	}
	if state.ValidationError != nil {
		r.Message = state.ValidationError.Message
	}
	return r
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
