package goal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// SuggestMonthlyInput holds the partially filled goal form.
type SuggestMonthlyInput struct {
	TargetAmount  string
	CurrentAmount string
	Deadline      string
}

// SuggestMonthlyOutput holds the suggested monthly contribution.
type SuggestMonthlyOutput struct {
	SuggestedMonthly decimal.Decimal
}

// SuggestMonthlyUseCase proposes a monthly contribution while a goal is
// being edited. It only uses the ledger clock.
type SuggestMonthlyUseCase struct {
	ledger *Ledger
}

// NewSuggestMonthlyUseCase creates a new SuggestMonthlyUseCase instance.
func NewSuggestMonthlyUseCase(ledger *Ledger) *SuggestMonthlyUseCase {
	return &SuggestMonthlyUseCase{
		ledger: ledger,
	}
}

// Execute validates the form values and computes the suggestion.
func (uc *SuggestMonthlyUseCase) Execute(input SuggestMonthlyInput) (*SuggestMonthlyOutput, error) {
	target, err := parseAmount(FieldTargetAmount, input.TargetAmount, true)
	if err != nil {
		return nil, err
	}
	current, err := parseAmount(FieldCurrentAmount, input.CurrentAmount, false)
	if err != nil {
		return nil, err
	}
	if target.IsNegative() {
		return nil, domainerror.NewValidationError(FieldTargetAmount, "must not be negative")
	}
	if current.IsNegative() {
		return nil, domainerror.NewValidationError(FieldCurrentAmount, "must not be negative")
	}

	deadline, err := entity.ParseDate(strings.TrimSpace(input.Deadline))
	if err != nil {
		return nil, domainerror.NewValidationError(FieldDeadline, "must be a date in YYYY-MM-DD format")
	}

	return &SuggestMonthlyOutput{
		SuggestedMonthly: entity.SuggestedMonthly(target, current, deadline, uc.ledger.Now()),
	}, nil
}
