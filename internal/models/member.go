package models

// Member is the live view of a guild member used by moderation actions
type Member struct {
	// ID is the Discord user ID
	ID string

	// Username is the account name, DisplayName prefers the guild nickname
	Username    string
	DisplayName string

	// Bot is true for bot accounts
	Bot bool

	// Roles is the member's current role ID set
	Roles []string

	// CustomStatus is the text of the member's custom status, empty if none
	CustomStatus string
}

// HasRole reports whether the member currently holds roleID
func (m *Member) HasRole(roleID string) bool {
	if m == nil || roleID == "" {
		return false
	}
	for _, r := range m.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
