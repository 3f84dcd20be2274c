package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type sampleRepayment struct {
	LoanID string          `json:"loan_id" validate:"required,hex32"`
	Amount decimal.Decimal `json:"amount" validate:"dec2,gte=1,lte=100"`
	Method string          `json:"payment_method,omitempty" validate:"omitempty,oneof=cash upi"`
	Note   string          `json:"note" validate:"max=5"`
	Rate   float64         `validate:"dec2"`
}

func validSample() sampleRepayment {
	return sampleRepayment{
		LoanID: strings.Repeat("a", 32),
		Amount: decimal.RequireFromString("12.50"),
		Method: "cash",
		Rate:   1.2,
	}
}

func TestValidator_FieldMessages(t *testing.T) {
	cv := NewValidator()
	if err := cv.Validate(validSample()); err != nil {
		t.Fatalf("valid sample rejected: %v", err)
	}

	cases := []struct {
		name  string
		mut   func(*sampleRepayment)
		field string
		msg   string
	}{
		{"missing id", func(s *sampleRepayment) { s.LoanID = "" }, "loan_id", "is required"},
		{"uppercase id", func(s *sampleRepayment) { s.LoanID = strings.Repeat("A", 32) }, "loan_id", "32-char lowercase hex"},
		{"short id", func(s *sampleRepayment) { s.LoanID = "deadbeef" }, "loan_id", "32-char lowercase hex"},
		{"non-hex id", func(s *sampleRepayment) { s.LoanID = strings.Repeat("g", 32) }, "loan_id", "32-char lowercase hex"},
		{"three decimals", func(s *sampleRepayment) { s.Amount = decimal.RequireFromString("12.345") }, "amount", "at most 2 decimal places"},
		{"below minimum", func(s *sampleRepayment) { s.Amount = decimal.RequireFromString("0.5") }, "amount", "greater than or equal to 1"},
		{"above maximum", func(s *sampleRepayment) { s.Amount = decimal.RequireFromString("100.01") }, "amount", "less than or equal to 100"},
		{"unknown method", func(s *sampleRepayment) { s.Method = "cheque" }, "payment_method", "one of: cash upi"},
		{"long note", func(s *sampleRepayment) { s.Note = "too long" }, "note", "at most 5 characters"},
		{"float rate", func(s *sampleRepayment) { s.Rate = 2.9999 }, "Rate", "at most 2 decimal places"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSample()
			tc.mut(&s)
			fe := ToFieldErrors(cv.Validate(s))
			if !containsFieldMsg(fe, tc.field, tc.msg) {
				t.Fatalf("want %s %q, got %+v", tc.field, tc.msg, fe)
			}
		})
	}
}

func TestValidator_Dec2ExactForLargeAmounts(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `json:"amount" validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []string{"90071992547409.99", "123456789012345.6", "0.01"} {
		if err := cv.Validate(P{Amount: decimal.RequireFromString(v)}); err != nil {
			t.Fatalf("expected %s to pass, got %v", v, err)
		}
	}
	for _, v := range []string{"123456789012345.678", "0.001"} {
		err := cv.Validate(P{Amount: decimal.RequireFromString(v)})
		if err == nil {
			t.Fatalf("expected dec2 error for %s", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "amount", "at most 2 decimal places") {
			t.Fatalf("expected dec2 message for %s, got %+v", v, fe)
		}
	}
}

func TestValidator_DatesAndEmail(t *testing.T) {
	type P struct {
		PaymentDate string `json:"payment_date,omitempty" validate:"required,datetime=2006-01-02"`
		Email       string `json:"email" validate:"required,email"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{PaymentDate: "03/02/2025", Email: "nope"}))
	if !containsFieldMsg(fe, "payment_date", "YYYY-MM-DD") {
		t.Fatalf("missing date message: %+v", fe)
	}
	if !containsFieldMsg(fe, "email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}
