// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// PrincipalKind represents the type of authenticated actor in the system.
type PrincipalKind string

const (
	// KindGuildCommander indicates a guild commander, who creates and administers quests.
	KindGuildCommander PrincipalKind = "guild_commander"
	// KindAdventurer indicates an adventurer, who views and acts on quests.
	KindAdventurer PrincipalKind = "adventurer"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case KindGuildCommander, KindAdventurer:
		return true
	default:
		return false
	}
}

// Principal is the minimal identity used for token issuance and validation.
// Persistence and business logic stay fully separate per kind; this type only
// carries what the token layer needs.
type Principal struct {
	ID   int32
	Kind PrincipalKind
}
