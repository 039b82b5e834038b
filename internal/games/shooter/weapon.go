package shooter

// Weapon is the session-wide gun configuration.
// Every bullet in flight deals the current Damage when it hits, so a
// power upgrade also strengthens bullets that were fired before it.
type Weapon struct {
	Damage int
}
