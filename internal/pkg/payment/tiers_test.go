package payment

import "testing"

func TestTiersAllows(t *testing.T) {
	tiers := Tiers{29900, 49900}

	tests := []struct {
		amount int64
		want   bool
	}{
		{amount: 29900, want: true},
		{amount: 49900, want: true},
		{amount: 100, want: false},
		{amount: 0, want: false},
		{amount: -29900, want: false},
		{amount: 29901, want: false},
	}

	for _, tt := range tests {
		if got := tiers.Allows(tt.amount); got != tt.want {
			t.Fatalf("Allows(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestTiersFromEnv(t *testing.T) {
	t.Setenv("PREMIUM_TIERS", "29900, 49900, bogus, -5, 0")
	tiers := TiersFromEnv()
	if len(tiers) != 2 || tiers[0] != 29900 || tiers[1] != 49900 {
		t.Fatalf("expected [29900 49900], got %v", tiers)
	}
}

func TestTiersFromEnv_Default(t *testing.T) {
	t.Setenv("PREMIUM_TIERS", "")
	tiers := TiersFromEnv()
	if len(tiers) != 1 || tiers[0] != DefaultTierMinorUnits {
		t.Fatalf("expected default tier %d, got %v", DefaultTierMinorUnits, tiers)
	}
}
