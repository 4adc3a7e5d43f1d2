package datebox

import (
	"time"

	"github.com/alexisbeaulieu97/datebox/internal/dateserial"
	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

// ValidationRequest is what an external validator sees of a value.
type ValidationRequest struct {
	// Value is the value as it would be stored.
	Value dateserial.Value
	// Date is the deserialized candidate.
	Date datetime.Date
	// Text is the input text at the time of the request.
	Text string
}

// CustomValidator judges a candidate value. Its verdict is combined with the
// internal result; it never writes the internal error message.
type CustomValidator func(ValidationRequest) bool

// InternalCheck gathers the inputs of the internal validation pass.
type InternalCheck struct {
	Value    datetime.Date
	Text     string
	Min      datetime.Date
	Max      datetime.Date
	Type     Type
	Location *time.Location

	InvalidDateMessage    string
	DateOutOfRangeMessage string
}

// InternalResult is the outcome of the internal pass. Message is empty when
// the value is valid.
type InternalResult struct {
	IsValid bool
	Message string
}

// ValidateInternal checks that a value is a well-formed date inside
// [Min, Max]. An empty box with no value is valid. Time values compare by
// time of day; the other types compare full instants.
func ValidateInternal(c InternalCheck) InternalResult {
	hasText := c.Text != "" && !c.Value.IsNull()
	isDate := c.Value.IsValid()
	inRange := isDate && datetime.InRange(c.Value, c.Min, c.Max, c.Type.rangeMode(), c.Location)

	if (!hasText && c.Value.IsAbsent()) || inRange {
		return InternalResult{IsValid: true}
	}

	if !isDate {
		return InternalResult{Message: orDefault(c.InvalidDateMessage, defaultInvalidDateMessage)}
	}
	return InternalResult{Message: orDefault(c.DateOutOfRangeMessage, defaultDateOutOfRangeMessage)}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func (b *DateBox) applyInternalValidation(d datetime.Date) bool {
	result := ValidateInternal(InternalCheck{
		Value:                 d,
		Text:                  b.state.Text,
		Min:                   b.dateOption(OptionMin),
		Max:                   b.dateOption(OptionMax),
		Type:                  b.state.Type,
		Location:              b.codec.Location(),
		InvalidDateMessage:    b.state.InvalidDateMessage,
		DateOutOfRangeMessage: b.state.DateOutOfRangeMessage,
	})

	b.lastInternal = result.IsValid
	b.state.IsValid = result.IsValid
	b.state.ValidationError = nil
	if !result.IsValid {
		b.state.ValidationError = &ValidationError{EditorSpecific: true, Message: result.Message}
		b.log.Debugw("internal validation failed", b.fields(map[string]any{
			"value":   d.String(),
			"message": result.Message,
		}))
	}
	return result.IsValid
}

func (b *DateBox) applyCustomValidation(d datetime.Date) bool {
	if b.validator == nil {
		return b.state.IsValid
	}
	ok := b.validator(ValidationRequest{
		Value: b.serializeDate(d),
		Date:  d,
		Text:  b.state.Text,
	})
	b.state.IsValid = b.lastInternal && ok
	if !ok {
		b.log.Debugw("custom validation failed", b.fields(map[string]any{"value": d.String()}))
	}
	return b.state.IsValid
}

// validateValue runs both passes. A pending skip suppresses the custom pass once.
func (b *DateBox) validateValue(d datetime.Date) bool {
	internal := b.applyInternalValidation(d)
	custom := true
	if !b.skipCustomValidation {
		custom = b.applyCustomValidation(d)
	}
	b.skipCustomValidation = false
	return internal && custom
}
