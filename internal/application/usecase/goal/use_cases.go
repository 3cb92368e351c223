package goal

// UseCases groups the goal use cases shared by the HTTP API and the CLI.
type UseCases struct {
	List    *ListGoalsUseCase
	Create  *CreateGoalUseCase
	Get     *GetGoalUseCase
	Update  *UpdateGoalUseCase
	Delete  *DeleteGoalUseCase
	Summary *GetSummaryUseCase
	Suggest *SuggestMonthlyUseCase
}

// NewUseCases builds every goal use case on top of ledger.
func NewUseCases(ledger *Ledger) UseCases {
	return UseCases{
		List:    NewListGoalsUseCase(ledger),
		Create:  NewCreateGoalUseCase(ledger),
		Get:     NewGetGoalUseCase(ledger),
		Update:  NewUpdateGoalUseCase(ledger),
		Delete:  NewDeleteGoalUseCase(ledger),
		Summary: NewGetSummaryUseCase(ledger),
		Suggest: NewSuggestMonthlyUseCase(ledger),
	}
}
