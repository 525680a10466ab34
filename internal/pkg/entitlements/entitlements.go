package entitlements

import "github.com/yatinsh21/ipuGotPlaced-sub000/app/models"

// EffectivePremium is the single predicate deciding premium access.
// Admins count as premium for authorization purposes even though the
// stored flags are independent. All gating code must go through this
// rather than reading IsPremium directly.
func EffectivePremium(isPremium, isAdmin bool) bool {
	return isPremium || isAdmin
}

// UserEffectivePremium applies EffectivePremium to a user record.
func UserEffectivePremium(u *models.User) bool {
	if u == nil {
		return false
	}
	return EffectivePremium(u.IsPremium, u.IsAdmin)
}
