package tier

import (
	"github.com/KirkDiggler/joingate/internal/models"
)

// Roles holds the role IDs that decide a member's tier
type Roles struct {
	Donator   string
	Booster   string
	Level15   string
	Member    string
	Blacklist string
}

// Resolver maps a role set to a tier
type Resolver struct {
	roles Roles
}

// New creates a new tier resolver
func New(roles Roles) *Resolver {
	return &Resolver{
		roles: roles,
	}
}

// Resolve returns the tier for roleIDs. The blacklist role wins over every
// other role, then donator > booster > level15 > member. A nil or empty set
// resolves to TierDenied.
func (r *Resolver) Resolve(roleIDs []string) models.Tier {
	if len(roleIDs) == 0 {
		return models.TierDenied
	}

	held := make(map[string]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		if id != "" {
			held[id] = struct{}{}
		}
	}

	has := func(roleID string) bool {
		if roleID == "" {
			return false
		}
		_, ok := held[roleID]
		return ok
	}

	switch {
	case has(r.roles.Blacklist):
		return models.TierDenied
	case has(r.roles.Donator):
		return models.TierDonator
	case has(r.roles.Booster):
		return models.TierBooster
	case has(r.roles.Level15):
		return models.TierLevel15
	case has(r.roles.Member):
		return models.TierMember
	default:
		return models.TierDenied
	}
}

// BlacklistRole returns the configured blacklist role ID
func (r *Resolver) BlacklistRole() string {
	return r.roles.Blacklist
}
