// Package accessgate is the single policy-enforcement point for content
// reads. Every data-returning handler asks the gate before composing its
// response; hiding buttons in a client is never the enforcement, since
// the API can always be called directly.
package accessgate

import "github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/entitlements"

// Resource identifies a gated content type.
type Resource string

const (
	ResourceTopicQuestions   Resource = "topic_questions"
	ResourceCompanyQuestions Resource = "company_questions"
	ResourceExperienceDetail Resource = "experience_detail"
	ResourceAlumniContact    Resource = "alumni_contact"
	ResourceBookmarks        Resource = "bookmarks"
)

// Level is the access level granted for a resource.
type Level string

const (
	LevelFull    Level = "full"
	LevelPreview Level = "preview"
	LevelLocked  Level = "locked"
)

// Reasons explain a non-full decision so handlers can surface the right
// prompt (sign-in vs upgrade) instead of a dead end.
const (
	ReasonSignInRequired  = "sign_in_required"
	ReasonPremiumRequired = "premium_required"
)

// Viewer is the request principal as established server-side. The
// client's cached premium flag is a UI hint only and never reaches here.
type Viewer struct {
	SignedIn  bool
	IsPremium bool
	IsAdmin   bool
}

// Decision is the gate's verdict for one viewer/resource pair.
type Decision struct {
	Level  Level
	Reason string
}

// Allows reports whether the decision grants the full payload.
func (d Decision) Allows() bool {
	return d.Level == LevelFull
}

// Decide is a pure function of the viewer's effective premium state and
// the resource type.
//
//	resource            anonymous        signed-in free   premium/admin
//	topic questions     full             full             full
//	company questions   preview          preview          full
//	experience detail   locked(sign-in)  locked(upgrade)  full
//	alumni contact      locked(sign-in)  locked(upgrade)  full
//	bookmarks           locked(sign-in)  locked(upgrade)  full
func Decide(viewer Viewer, resource Resource) Decision {
	premium := viewer.SignedIn && entitlements.EffectivePremium(viewer.IsPremium, viewer.IsAdmin)

	switch resource {
	case ResourceTopicQuestions:
		return Decision{Level: LevelFull}
	case ResourceCompanyQuestions:
		if premium {
			return Decision{Level: LevelFull}
		}
		if !viewer.SignedIn {
			return Decision{Level: LevelPreview, Reason: ReasonSignInRequired}
		}
		return Decision{Level: LevelPreview, Reason: ReasonPremiumRequired}
	case ResourceExperienceDetail, ResourceAlumniContact, ResourceBookmarks:
		if premium {
			return Decision{Level: LevelFull}
		}
		if !viewer.SignedIn {
			return Decision{Level: LevelLocked, Reason: ReasonSignInRequired}
		}
		return Decision{Level: LevelLocked, Reason: ReasonPremiumRequired}
	default:
		// Unknown resources stay locked rather than leaking data.
		if !viewer.SignedIn {
			return Decision{Level: LevelLocked, Reason: ReasonSignInRequired}
		}
		return Decision{Level: LevelLocked, Reason: ReasonPremiumRequired}
	}
}
