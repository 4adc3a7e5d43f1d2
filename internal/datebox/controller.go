package datebox

import (
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// Input replaces the input text and reconciles it with the stored value.
func (b *DateBox) Input(text string, event any) (Outcome, error) {
	if err := b.enter(); err != nil {
		return OutcomeSynchronized, err
	}
	defer b.leave()

	b.setText(text)
	return b.handleTextChange(event), nil
}

// HandleTextChange reconciles the current text with the stored value. Text
// that already renders the value only re-validates. Otherwise the text is
// parsed, merged onto the value (or the strategy's default date), validated,
// and either committed, re-rendered or rejected. The custom validator always
// runs last on the merged candidate.
func (b *DateBox) HandleTextChange(event any) (Outcome, error) {
	if err := b.enter(); err != nil {
		return OutcomeSynchronized, err
	}
	defer b.leave()

	return b.handleTextChange(event), nil
}

func (b *DateBox) handleTextChange(event any) Outcome {
	text := b.state.Text
	current := b.dateOption(OptionValue)

	if text == b.displayedText(current) {
		b.validateValue(current)
		return OutcomeSynchronized
	}

	parsed := b.strategy.ParseText(text, b.DisplayFormat())
	baseline := current
	if baseline.IsAbsent() && b.strategy.UseCurrentDateByDefault() {
		baseline = b.strategy.DefaultDate()
	}
	merged := datetime.Merge(baseline, parsed, b.state.Type.mergeParts(), b.zone)

	candidate := parsed
	if b.state.Type == TypeTime && !parsed.IsAbsent() {
		candidate = merged
	}

	outcome := OutcomeRejected
	if b.applyInternalValidation(candidate) {
		if current.IsValid() && merged.IsValid() && current.SameInstant(merged) && b.displayedText(merged) != text {
			b.renderValue()
			outcome = OutcomeReRendered
			b.log.Debugw("text re-rendered", b.fields(map[string]any{"text": b.state.Text}))
		} else {
			b.dateValue(merged, event)
			outcome = OutcomeCommitted
		}
	}

	b.applyCustomValidation(merged)
	return outcome
}

// dateValue stores d, resynchronizes the text and submit value, and
// notifies listeners. The causing event is attached only when the instant
// actually changed.
func (b *DateBox) dateValue(d datetime.Date, event any) {
	old := b.dateOption(OptionValue)
	if sameTimestamp(old, d) {
		event = nil
	}

	prev := b.state.Value
	next := b.serializeDate(d)
	if next.Equal(prev) {
		b.renderValue()
		return
	}

	b.state.Value = next
	b.renderValue()
	b.log.Debugw("value committed", b.fields(map[string]any{
		"value":    next.String(),
		"previous": prev.String(),
	}))
	b.notify(ValueChangedEvent{Value: next, PreviousValue: prev, Event: event})
}

// sameTimestamp compares instants the way a change check must: two absent
// dates match, malformed dates never do.
func sameTimestamp(a, b datetime.Date) bool {
	if a.IsAbsent() || b.IsAbsent() {
		return a.IsAbsent() && b.IsAbsent()
	}
	return a.IsValid() && b.IsValid() && a.SameInstant(b)
}
