package validation

// Rule names a check applied to a candidate date.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleWeekday  Rule = "weekday"
	RuleFuture   Rule = "future"
	RulePast     Rule = "past"
)

// Result captures the outcome of executing a single rule.
type Result struct {
	Rule    Rule
	Passed  bool
	Message string
	Error   error
}
