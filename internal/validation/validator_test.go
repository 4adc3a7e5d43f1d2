package validation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

func TestRunRules_Success(t *testing.T) {
	t.Parallel()

	rules := []Rule{RuleRequired, RuleWeekday, RuleFuture}
	results, err := RunRules(context.Background(), rules, day(2024, time.March, 18), now)
	require.NoError(t, err)
	require.Len(t, results, len(rules))

	for i, result := range results {
		require.Equal(t, rules[i], result.Rule)
		require.True(t, result.Passed)
		require.Equal(t, "passed", result.Message)
	}
}

func TestRunRules_Failure(t *testing.T) {
	t.Parallel()

	rules := []Rule{RuleWeekday, RulePast, Rule("leap")}
	results, err := RunRules(context.Background(), rules, day(2024, time.March, 16), now)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Saturday")
	require.Contains(t, err.Error(), "unknown rule")
	require.Len(t, results, 3)

	for _, result := range results {
		require.False(t, result.Passed)
		require.Error(t, result.Error)
	}
}

func TestRunRules_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunRules(ctx, []Rule{RuleRequired}, datetime.Null(), now)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Rule{RuleRequired, RuleWeekday}, ParseRules([]string{" Required", "weekday"}))
}

func TestCustomValidatorDrivesBoxValidity(t *testing.T) {
	t.Parallel()

	var reports int
	validator := Custom([]Rule{RuleWeekday}, func() time.Time { return now }, func(results []Result, err error) {
		reports++
	})

	box, err := datebox.New(datebox.Config{
		Options:   map[datebox.Option]any{datebox.OptionType: datebox.TypeDate},
		Validator: validator,
		Location:  time.UTC,
		Now:       func() time.Time { return now },
	})
	require.NoError(t, err)

	outcome, err := box.Input("3/16/2024", nil)
	require.NoError(t, err)
	require.Equal(t, datebox.OutcomeCommitted, outcome)
	require.Equal(t, datebox.CustomFailure, box.Validity())
	require.False(t, box.State().IsValid)

	_, err = box.Input("3/18/2024", nil)
	require.NoError(t, err)
	require.Equal(t, datebox.Valid, box.Validity())
	require.Equal(t, 2, reports)
}
