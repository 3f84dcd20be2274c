package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "savings-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "LN-1"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx || got != l {
				t.Fatalf("Create args mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_Lookups(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "LN-2"}

	m := &Repo{
		GetByLoanIDFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if loanID != "LN-2" {
				t.Fatalf("GetByLoanID loanID mismatch: got %s", loanID)
			}
			return want, nil
		},
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			return want, nil
		},
	}
	if got, err := m.GetByLoanID(ctx, "LN-2"); err != nil || got != want {
		t.Fatalf("GetByLoanID = %+v, %v", got, err)
	}
	if got, err := m.GetByLoanIDForUpdate(ctx, "LN-2"); err != nil || got != want {
		t.Fatalf("GetByLoanIDForUpdate = %+v, %v", got, err)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if got, err := m.GetByLoanID(ctx, "LN-2"); err != context.Canceled || got != nil {
		t.Fatalf("GetByLoanID default: got %+v, %v", got, err)
	}
	if _, err := m.GetByLoanIDForUpdate(ctx, "LN-2"); err != context.Canceled {
		t.Fatalf("GetByLoanIDForUpdate default: want context.Canceled, got %v", err)
	}
}

func TestRepo_UpdateBalance(t *testing.T) {
	var gotVersion uint64
	var gotStatus domain.Status
	m := &Repo{
		UpdateBalanceFn: func(_ context.Context, id, v uint64, amt decimal.Decimal, s domain.Status) error {
			gotVersion, gotStatus = v, s
			return domain.ErrConcurrentUpdate
		},
	}
	err := m.UpdateBalance(context.Background(), 1, 7, decimal.NewFromInt(5), domain.StatusPaid)
	if !errors.Is(err, domain.ErrConcurrentUpdate) || gotVersion != 7 || gotStatus != domain.StatusPaid {
		t.Fatalf("UpdateBalance forwarded wrong values: v=%d s=%s err=%v", gotVersion, gotStatus, err)
	}
	if err := (&Repo{}).UpdateBalance(context.Background(), 1, 0, decimal.Zero, domain.StatusActive); err != nil {
		t.Fatalf("UpdateBalance default: %v", err)
	}
}

func TestRepaymentRepo_Defaults(t *testing.T) {
	m := &RepaymentRepo{}
	ctx := context.Background()
	if err := m.Create(ctx, &domain.Repayment{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if rs, err := m.ListByLoanID(ctx, "x"); err != nil || rs != nil {
		t.Fatalf("ListByLoanID default: %v, %v", rs, err)
	}

	m.ListByLoanIDFn = func(_ context.Context, loanID string) ([]domain.Repayment, error) {
		return []domain.Repayment{{LoanID: loanID}}, nil
	}
	rs, _ := m.ListByLoanID(ctx, "x")
	if len(rs) != 1 || rs[0].LoanID != "x" {
		t.Fatalf("ListByLoanIDFn not used: %+v", rs)
	}
}
