package deathmatch

import "github.com/botarena/botarena/common/utils/vector"

type Render struct {
	type_ string

	firing  bool
	beamEnd vector.Vector2
}

func (deathmatch DeathmatchGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}

func (r *Render) StartFiring(beamEnd vector.Vector2) {
	r.firing = true
	r.beamEnd = beamEnd
}

func (r *Render) StopFiring() {
	r.firing = false
}

func (r Render) IsFiring() bool {
	return r.firing
}

func (r Render) GetBeamEnd() vector.Vector2 {
	return r.beamEnd
}
