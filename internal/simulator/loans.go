package simulator

import (
	"fmt"

	"github.com/jwkuo/bobasim/internal/models"
	"github.com/lucsky/cuid"
)

// HasActiveLoan reports whether a loan for the named option is still
// being paid off.
func (s *Simulator) HasActiveLoan(optionName string) bool {
	for _, loan := range s.Loans {
		if loan.Name() == optionName {
			return true
		}
	}
	return false
}

// TakeLoan activates the named loan option and credits its principal
// to cash immediately. Each option can be active at most once; it can
// be retaken after being fully paid off.
func (s *Simulator) TakeLoan(optionName string) error {
	option, ok := models.LoanOptionByName(optionName)
	if !ok {
		return fmt.Errorf("unknown loan option %q", optionName)
	}
	if s.HasActiveLoan(option.Name) {
		return fmt.Errorf("%w: %s", ErrLoanActive, option.Name)
	}

	s.Loans = append(s.Loans, &models.Loan{
		ID:               cuid.New(),
		Option:           option,
		RemainingBalance: option.Amount,
	})
	s.Cash += option.Amount

	return nil
}

// settleLoans runs one daily settlement cycle over every active loan:
// pay min(principal * paybackRate, remaining balance), then compound
// interest on whatever balance survives the payment. Loans close as
// soon as the balance reaches zero.
func (s *Simulator) settleLoans() float64 {
	paid := 0.0
	var active []*models.Loan

	for _, loan := range s.Loans {
		payment := loan.Option.PaymentPerDay()
		if payment > loan.RemainingBalance {
			payment = loan.RemainingBalance
		}

		s.Cash -= payment
		paid += payment
		loan.RemainingBalance -= payment

		if loan.RemainingBalance > 0 {
			loan.RemainingBalance *= 1 + loan.Option.InterestRate
			active = append(active, loan)
		}
	}

	s.Loans = active
	s.dailyLoanPayments += paid
	return paid
}
