package models

// LoanOption is a static loan template from the catalog.
type LoanOption struct {
	Name         string
	Amount       float64
	InterestRate float64
	PaybackRate  float64
}

// PaymentPerDay is the fixed principal payment for one settlement
// cycle, before the remaining-balance clamp.
func (o LoanOption) PaymentPerDay() float64 {
	return o.Amount * o.PaybackRate
}

// Loan is an active instance of a LoanOption.
type Loan struct {
	ID               string
	Option           LoanOption
	RemainingBalance float64
}

func (l *Loan) Name() string {
	return l.Option.Name
}
