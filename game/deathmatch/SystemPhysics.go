package deathmatch

func systemPhysics(deathmatch *DeathmatchGame, dt float64) {
	deathmatch.PhysicalWorld.Step(
		dt,
		8, // velocityIterations; higher improves stability; default 8 in testbed
		3, // positionIterations; higher improve overlap resolution; default 3 in testbed
	)
}
