package simulator

import (
	"errors"
	"testing"

	"github.com/jwkuo/bobasim/internal/models"
)

func TestTakeLoanCreditsPrincipal(t *testing.T) {
	sim := newTestSimulator(t)
	cashBefore := sim.Cash

	if err := sim.TakeLoan("Neighborhood Credit Union"); err != nil {
		t.Fatalf("TakeLoan: %v", err)
	}
	if want := cashBefore + 500; !almostEqual(sim.Cash, want) {
		t.Errorf("cash = %.2f, want %.2f", sim.Cash, want)
	}
	if len(sim.Loans) != 1 {
		t.Fatalf("active loans = %d, want 1", len(sim.Loans))
	}
	if !almostEqual(sim.Loans[0].RemainingBalance, 500) {
		t.Errorf("balance = %.2f, want 500.00", sim.Loans[0].RemainingBalance)
	}
}

func TestTakeLoanRejectsDuplicate(t *testing.T) {
	sim := newTestSimulator(t)
	if err := sim.TakeLoan("Neighborhood Credit Union"); err != nil {
		t.Fatalf("first TakeLoan: %v", err)
	}
	err := sim.TakeLoan("Neighborhood Credit Union")
	if !errors.Is(err, ErrLoanActive) {
		t.Fatalf("err = %v, want ErrLoanActive", err)
	}
	// A different option is still available.
	if err := sim.TakeLoan("Small Business Bank Loan"); err != nil {
		t.Fatalf("second option: %v", err)
	}
}

func TestTakeLoanUnknownOption(t *testing.T) {
	sim := newTestSimulator(t)
	if err := sim.TakeLoan("Generous Uncle"); err == nil {
		t.Fatal("unknown loan option accepted")
	}
}

func TestSettleLoansAmortization(t *testing.T) {
	sim := newTestSimulator(t)
	if err := sim.TakeLoan("Neighborhood Credit Union"); err != nil {
		t.Fatalf("TakeLoan: %v", err)
	}
	cashBefore := sim.Cash

	// Payment is 5% of the 500 principal, then 1.5% interest compounds
	// on the surviving balance: (500 - 25) * 1.015 = 482.125.
	paid := sim.settleLoans()
	if !almostEqual(paid, 25) {
		t.Errorf("paid = %.3f, want 25.000", paid)
	}
	if want := cashBefore - 25; !almostEqual(sim.Cash, want) {
		t.Errorf("cash = %.2f, want %.2f", sim.Cash, want)
	}
	if len(sim.Loans) != 1 {
		t.Fatalf("loan closed early")
	}
	if !almostEqual(sim.Loans[0].RemainingBalance, 482.125) {
		t.Errorf("balance = %.3f, want 482.125", sim.Loans[0].RemainingBalance)
	}
}

func TestSettleLoansClampsFinalPayment(t *testing.T) {
	sim := newTestSimulator(t)
	sim.Loans = []*models.Loan{{
		ID:               "test",
		Option:           models.LoanOptions[0],
		RemainingBalance: 10,
	}}
	cashBefore := sim.Cash

	paid := sim.settleLoans()
	if !almostEqual(paid, 10) {
		t.Errorf("paid = %.2f, want the remaining 10.00", paid)
	}
	if len(sim.Loans) != 0 {
		t.Errorf("loan still active after payoff")
	}
	if want := cashBefore - 10; !almostEqual(sim.Cash, want) {
		t.Errorf("cash = %.2f, want %.2f", sim.Cash, want)
	}

	// The option frees up once paid off.
	if err := sim.TakeLoan("Neighborhood Credit Union"); err != nil {
		t.Errorf("retake after payoff: %v", err)
	}
}
