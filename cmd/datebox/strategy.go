package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
)

type strategyOptions struct {
	jsonOutput bool
}

type strategyReport struct {
	Type           string   `json:"type"`
	PickerType     string   `json:"pickerType"`
	Strategy       string   `json:"strategy"`
	DisplayFormat  string   `json:"displayFormat"`
	PopupTitle     string   `json:"popupTitle"`
	ApplyValueMode string   `json:"applyValueMode"`
	Buttons        []string `json:"buttons"`
	Keys           []string `json:"keys"`
	InputWidth     int      `json:"inputWidth"`
	ReadOnlyInput  bool     `json:"readOnlyInput"`
	ClearButton    bool     `json:"clearButton"`
	DropDownButton bool     `json:"dropDownButton"`
}

func newStrategyCmd(flags *rootFlags) *cobra.Command {
	opts := &strategyOptions{}

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Show the picker strategy the options select",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrategy(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}

func runStrategy(cmd *cobra.Command, flags *rootFlags, opts *strategyOptions) error {
	s, err := newSession(cmd, "inspect strategy", flags)
	if err != nil {
		return err
	}

	box, err := s.newBox()
	if err != nil {
		return newCommandError("inspect strategy", "creating date box", err, "Check the option values in the options document.")
	}
	defer func() { _ = box.Dispose() }()

	report := newStrategyReport(box)
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Type:        %s\n", report.Type)
	fmt.Fprintf(out, "Picker:      %s\n", report.PickerType)
	fmt.Fprintf(out, "Strategy:    %s\n", report.Strategy)
	fmt.Fprintf(out, "Format:      %s\n", report.DisplayFormat)
	fmt.Fprintf(out, "Popup title: %s\n", valueOrFallback(report.PopupTitle, "(none)"))
	fmt.Fprintf(out, "Apply mode:  %s\n", report.ApplyValueMode)
	fmt.Fprintf(out, "Buttons:     %s\n", valueOrFallback(strings.Join(report.Buttons, ", "), "(none)"))
	fmt.Fprintf(out, "Keys:        %s\n", valueOrFallback(strings.Join(report.Keys, " "), "(none)"))
	fmt.Fprintf(out, "Input width: %d\n", report.InputWidth)
	return nil
}

func newStrategyReport(box *datebox.DateBox) strategyReport {
	state := box.State()
	popup := box.PopupConfig()

	buttons := make([]string, 0, len(popup.Buttons))
	for _, b := range popup.Buttons {
		buttons = append(buttons, string(b))
	}

	return strategyReport{
		Type:           string(state.Type),
		PickerType:     string(box.PickerType()),
		Strategy:       string(box.Strategy().Name()),
		DisplayFormat:  box.DisplayFormat(),
		PopupTitle:     box.PopupTitle(),
		ApplyValueMode: string(state.ApplyValueMode),
		Buttons:        buttons,
		Keys:           box.Strategy().SupportedKeys(),
		InputWidth:     state.InputWidth,
		ReadOnlyInput:  box.InputReadOnly(),
		ClearButton:    box.ClearButtonVisible(),
		DropDownButton: state.ShowDropDownButton,
	}
}
