package commission

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/emberoak/atelier-backend/pkg/errors"
)

func TestComputeTenPercentFee(t *testing.T) {
	price := decimal.NewFromInt(85)
	rate := decimal.RequireFromString("0.10")

	got, err := Compute(price, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GrossMinor != 8500 {
		t.Fatalf("expected 8500 minor units, got %d", got.GrossMinor)
	}
	if got.FeeMinor != 850 {
		t.Fatalf("expected 850 fee, got %d", got.FeeMinor)
	}
}

func TestComputeRoundsFractionalPrices(t *testing.T) {
	rate := decimal.RequireFromString("0.10")

	cases := []struct {
		name  string
		price string
		gross int64
		fee   int64
	}{
		{name: "half cent rounds up", price: "19.995", gross: 2000, fee: 200},
		{name: "sub cent fee", price: "0.05", gross: 5, fee: 1},
		{name: "plain decimal", price: "42.50", gross: 4250, fee: 425},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(decimal.RequireFromString(tc.price), rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.GrossMinor != tc.gross || got.FeeMinor != tc.fee {
				t.Fatalf("expected %d/%d, got %d/%d", tc.gross, tc.fee, got.GrossMinor, got.FeeMinor)
			}
		})
	}
}

func TestComputeRejectsNonPositivePrice(t *testing.T) {
	rate := decimal.RequireFromString("0.10")
	for _, price := range []string{"0", "-1", "-0.01"} {
		if _, err := Compute(decimal.RequireFromString(price), rate); err == nil {
			t.Fatalf("expected error for price %s", price)
		} else if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for price %s, got %v", price, err)
		}
	}
}

func TestComputeRejectsOutOfRangeRate(t *testing.T) {
	price := decimal.NewFromInt(10)
	for _, raw := range []string{"0", "-0.1", "1", "1.5"} {
		if _, err := Compute(price, decimal.RequireFromString(raw)); err == nil {
			t.Fatalf("expected error for rate %s", raw)
		} else if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for rate %s, got %v", raw, err)
		}
	}
}

func TestComputeFeeNeverExceedsGross(t *testing.T) {
	rate := decimal.RequireFromString("0.999")
	got, err := Compute(decimal.RequireFromString("0.01"), rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FeeMinor > got.GrossMinor {
		t.Fatalf("fee %d exceeds gross %d", got.FeeMinor, got.GrossMinor)
	}
}

func TestParseRate(t *testing.T) {
	rate, err := ParseRate("0.10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rate.Equal(decimal.RequireFromString("0.10")) {
		t.Fatalf("unexpected rate %s", rate)
	}

	if _, err := ParseRate("abc"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseRate("1.2"); err == nil {
		t.Fatal("expected range error")
	}
}
