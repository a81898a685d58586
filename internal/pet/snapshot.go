package pet

// Snapshot captures the full observable engine state for rendering and
// determinism tests.
type Snapshot struct {
	Player Player
	State  LifeState
	Avatar AvatarKey
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Player: e.player,
		State:  e.state,
		Avatar: DeriveAvatarKey(e.player),
	}
}
