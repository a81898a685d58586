package pet

import "testing"

func TestDeriveAvatarKey(t *testing.T) {
	cases := []struct {
		name   string
		player Player
		want   AvatarKey
	}{
		{"bare", Player{}, AvatarBase},
		{"sword owned unequipped", Player{OwnsSword: true}, AvatarBase},
		{"sword equipped", Player{OwnsSword: true, SwordEquipped: true}, AvatarSwordBit},
		{"shield equipped", Player{OwnsShield: true, ShieldEquipped: true}, AvatarShieldBit},
		{"fully armed", Player{
			OwnsSword: true, SwordEquipped: true,
			OwnsShield: true, ShieldEquipped: true,
		}, AvatarFullyArmed},
		// Equipped flags without ownership must not show gear
		{"equipped but unowned", Player{SwordEquipped: true, ShieldEquipped: true}, AvatarBase},
	}

	for _, c := range cases {
		if got := DeriveAvatarKey(c.player); got != c.want {
			t.Errorf("%s: expected key %d, got %d", c.name, c.want, got)
		}
	}
}

func TestToggleRequiresOwnership(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})

	if e.ToggleSword() {
		t.Error("ToggleSword should be refused without the sword")
	}
	if e.ToggleShield() {
		t.Error("ToggleShield should be refused without the shield")
	}

	e.player.OwnsSword = true
	if !e.ToggleSword() {
		t.Fatal("ToggleSword should succeed once owned")
	}
	if !e.Player().SwordEquipped {
		t.Error("First toggle should equip the sword")
	}
	if e.AvatarKey() != AvatarSwordBit {
		t.Errorf("Avatar should show only the sword, got %d", e.AvatarKey())
	}

	e.ToggleSword()
	if e.Player().SwordEquipped {
		t.Error("Second toggle should unequip the sword")
	}
	if e.AvatarKey() != AvatarBase {
		t.Errorf("Avatar should be bare again, got %d", e.AvatarKey())
	}
}
