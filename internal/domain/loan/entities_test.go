package loan

import (
	"errors"
	"testing"
)

func TestNormalizeMethod(t *testing.T) {
	ok := map[string]string{
		"Cash":           "cash",
		"Bank Transfer":  "bank_transfer",
		" bank_transfer": "bank_transfer",
		"UPI":            "upi",
		"Other":          "other",
	}
	for in, want := range ok {
		got, err := NormalizeMethod(in)
		if err != nil {
			t.Fatalf("NormalizeMethod(%q) err: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeMethod(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "cheque", "bank-transfer"} {
		if _, err := NormalizeMethod(in); !errors.Is(err, ErrInvalidMethod) {
			t.Fatalf("NormalizeMethod(%q) err = %v, want ErrInvalidMethod", in, err)
		}
	}
}
