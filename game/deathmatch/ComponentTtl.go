package deathmatch

// Ttl keeps a transient entity (shots, effects) alive for a number of steps
// after the one that created it.
type Ttl struct {
	remaining int
}

func NewTtl(steps int) *Ttl {
	return &Ttl{remaining: steps}
}

func (deathmatch DeathmatchGame) CastTtl(data interface{}) *Ttl {
	return data.(*Ttl)
}

// Expire consumes one step and reports whether the entity has outlived it.
func (t *Ttl) Expire() bool {
	t.remaining--
	return t.remaining < 0
}

func (t Ttl) Remaining() int {
	return t.remaining
}
