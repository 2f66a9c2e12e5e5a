package models

// Account roles carried in JWT claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AccessType says why a user may (or may not) access a game. The order
// of the constants is the tie-break order: when a game is reachable
// through several paths the highest-priority type wins.
type AccessType string

const (
	AccessFree         AccessType = "FREE"
	AccessPurchased    AccessType = "PURCHASED"
	AccessSubscription AccessType = "SUBSCRIPTION"
	AccessNone         AccessType = "NO_ACCESS"
)

// accessPriority: lower value wins.
var accessPriority = map[AccessType]int{
	AccessFree:         0,
	AccessPurchased:    1,
	AccessSubscription: 2,
	AccessNone:         3,
}

// Priority returns the tie-break rank of the access type.
func (t AccessType) Priority() int {
	if p, ok := accessPriority[t]; ok {
		return p
	}
	return accessPriority[AccessNone]
}

// Granted reports whether the access type allows playing the game.
func (t AccessType) Granted() bool {
	return t != AccessNone && t != ""
}

// TierKind distinguishes country-level from region-level pricing tiers.
type TierKind string

const (
	TierKindCountry TierKind = "country"
	TierKindRegion  TierKind = "region"
)
