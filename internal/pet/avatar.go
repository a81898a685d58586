package pet

// AvatarKey encodes which gear is visible on the avatar as an
// order-independent bit composition. Gear shows only when both owned and
// equipped. Pure derivation, recomputed on demand; it is two branches, so
// there is nothing worth caching.
type AvatarKey int

const (
	AvatarBase       AvatarKey = 0
	AvatarSwordBit   AvatarKey = 1
	AvatarShieldBit  AvatarKey = 2
	AvatarFullyArmed AvatarKey = AvatarSwordBit | AvatarShieldBit
)

// DeriveAvatarKey computes the avatar key for a player state.
func DeriveAvatarKey(p Player) AvatarKey {
	key := AvatarBase
	if p.OwnsSword && p.SwordEquipped {
		key |= AvatarSwordBit
	}
	if p.OwnsShield && p.ShieldEquipped {
		key |= AvatarShieldBit
	}
	return key
}

// AvatarKey returns the avatar key for the current player state.
func (e *Engine) AvatarKey() AvatarKey {
	return DeriveAvatarKey(e.player)
}
