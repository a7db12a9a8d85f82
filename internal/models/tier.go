package models

// Tier is the access level derived from a member's roles
type Tier string

const (
	TierDenied  Tier = "Denied"
	TierMember  Tier = "Member"
	TierLevel15 Tier = "Level15"
	TierBooster Tier = "Booster"
	TierDonator Tier = "Donator"
)

// Page returns the static landing page served for the tier
func (t Tier) Page() string {
	switch t {
	case TierDonator:
		return "donator.html"
	case TierBooster:
		return "booster.html"
	case TierLevel15:
		return "level15.html"
	case TierMember:
		return "member.html"
	default:
		return "denied.html"
	}
}

// IsDenied returns true if the tier grants no access
func (t Tier) IsDenied() bool {
	return t != TierMember && t != TierLevel15 && t != TierBooster && t != TierDonator
}
