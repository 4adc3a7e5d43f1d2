package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
	dberrors "github.com/alexisbeaulieu97/datebox/pkg/errors"
)

// RunRules executes the provided rules against d and returns their results.
func RunRules(ctx context.Context, rules []Rule, d datetime.Date, now time.Time) ([]Result, error) {
	results := make([]Result, 0, len(rules))
	var failedMessages []string

	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := Result{Rule: rule}

		var err error
		switch rule {
		case RuleRequired:
			err = CheckRequired(d)
		case RuleWeekday:
			err = CheckWeekday(d)
		case RuleFuture:
			err = CheckFuture(d, now)
		case RulePast:
			err = CheckPast(d, now)
		default:
			err = dberrors.NewValidationError("rules", fmt.Sprintf("unknown rule %q", rule), nil)
		}

		if err != nil {
			result.Passed = false
			result.Message = err.Error()
			result.Error = err
			failedMessages = append(failedMessages, err.Error())
		} else {
			result.Passed = true
			result.Message = "passed"
		}

		results = append(results, result)
	}

	if len(failedMessages) > 0 {
		combined := strings.Join(failedMessages, "; ")
		return results, fmt.Errorf("rules failed: %s", combined)
	}

	return results, nil
}

// ParseRules converts rule names as they appear in an options document.
func ParseRules(names []string) []Rule {
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, Rule(strings.ToLower(strings.TrimSpace(name))))
	}
	return rules
}

// Custom returns a box validator that runs rules against each candidate.
// report, when set, receives the results of every run.
func Custom(rules []Rule, now func() time.Time, report func([]Result, error)) datebox.CustomValidator {
	if now == nil {
		now = time.Now
	}
	return func(req datebox.ValidationRequest) bool {
		results, err := RunRules(context.Background(), rules, req.Date, now())
		if report != nil {
			report(results, err)
		}
		return err == nil
	}
}
