package payment

import (
	"strconv"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

// DefaultTierMinorUnits is the lifetime premium price in paise (Rs 299).
const DefaultTierMinorUnits int64 = 29900

// Tiers is the server-side allow-list of purchasable amounts.
type Tiers []int64

// TiersFromEnv reads PREMIUM_TIERS (comma-separated paise amounts) and
// falls back to the default single tier. Malformed entries are skipped.
func TiersFromEnv() Tiers {
	raw := env.GetEnvList("PREMIUM_TIERS")
	tiers := make(Tiers, 0, len(raw))
	for _, entry := range raw {
		amount, err := strconv.ParseInt(entry, 10, 64)
		if err != nil || amount <= 0 {
			continue
		}
		tiers = append(tiers, amount)
	}
	if len(tiers) == 0 {
		tiers = Tiers{DefaultTierMinorUnits}
	}
	return tiers
}

// Allows reports whether the amount matches a configured price point.
func (t Tiers) Allows(amountMinorUnits int64) bool {
	for _, tier := range t {
		if tier == amountMinorUnits {
			return true
		}
	}
	return false
}
