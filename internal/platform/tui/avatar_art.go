package tui

import "github.com/vovakirdan/platypor/internal/pet"

// avatarArt holds the ASCII sprite per avatar key. Gear is drawn only when
// owned and equipped, mirroring the engine's key derivation.
var avatarArt = map[pet.AvatarKey][]string{
	pet.AvatarBase: {
		`   ___     `,
		`  (o o)    `,
		` <  V  >   `,
		`  \_=_/    `,
		`  // \\    `,
	},
	pet.AvatarSwordBit: {
		`   ___   | `,
		`  (o o)  | `,
		` <  V  >-+ `,
		`  \_=_/  | `,
		`  // \\  * `,
	},
	pet.AvatarShieldBit: {
		`   ___  (#)`,
		`  (o o) (#)`,
		` <  V  >(#)`,
		`  \_=_/ (#)`,
		`  // \\    `,
	},
	pet.AvatarFullyArmed: {
		`|  ___  (#)`,
		`| (o o) (#)`,
		`+<  V  >(#)`,
		`| \_=_/ (#)`,
		`* // \\    `,
	},
}

// artFor returns the sprite lines for an avatar key.
func artFor(key pet.AvatarKey) []string {
	if art, ok := avatarArt[key]; ok {
		return art
	}
	return avatarArt[pet.AvatarBase]
}
