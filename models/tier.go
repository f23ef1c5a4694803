package models

// Tier is the visibility class a configuration key belongs to.
type Tier string

const (
	TierPublic      Tier = "public"
	TierSecret      Tier = "secret"
	TierFeatureFlag Tier = "feature_flag"
)

// Tiers lists every tier in declaration order.
var Tiers = []Tier{TierPublic, TierSecret, TierFeatureFlag}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierPublic, TierSecret, TierFeatureFlag:
		return true
	default:
		return false
	}
}
