package mysql

import (
	"path/filepath"
	"testing"
	"time"

	contributionDomain "savings-ledger/internal/domain/contribution"
	cycleDomain "savings-ledger/internal/domain/cycle"
	loanDomain "savings-ledger/internal/domain/loan"
	memberDomain "savings-ledger/internal/domain/member"
	"savings-ledger/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates a file-backed sqlite DB per test. The domain models carry no
// MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberDomain.Member{},
		&cycleDomain.SavingsCycle{},
		&contributionDomain.Contribution{},
		&loanDomain.Loan{},
		&loanDomain.Repayment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func makeMember(name, email string, active bool) *memberDomain.Member {
	return &memberDomain.Member{
		MemberID:    id.NewID32(),
		FullName:    name,
		Email:       email,
		PhoneNumber: "+911234567890",
		JoinedDate:  day(2024, 1, 1),
		IsActive:    active,
	}
}

func makeLoan(loanID, borrowerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          loanID,
		BorrowerID:      borrowerID,
		PrincipalAmount: dec("1000"),
		InterestRate:    dec("12"),
		TotalAmountDue:  dec("1120"),
		AmountRepaid:    decimal.Zero,
		IssueDate:       day(2025, 1, 10),
		DueDate:         day(2025, 7, 10),
		Status:          loanDomain.StatusActive,
	}
}
