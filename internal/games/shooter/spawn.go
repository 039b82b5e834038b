package shooter

// spawnEnemies rolls the 1-in-N regular spawn and then releases a boss if
// enough regular kills have piled up. The boss counter restarts at zero, so
// each threshold crossing yields exactly one boss. Kills are counted in the
// collision phase, so a boss earned this tick appears on the next one.
func (g *Game) spawnEnemies() {
	rate := max(g.difficulty.SpawnRate(g.cfg.Enemies.SpawnRate, g.score, g.tick), 1)
	if g.rng.IntN(rate)+1 == 1 {
		kind := regularKinds[g.rng.IntN(len(regularKinds))]
		g.spawn(kind)
	}

	if g.cfg.Enemies.BossEvery > 0 && g.killsSinceBoss >= g.cfg.Enemies.BossEvery {
		g.spawn(KindBoss)
		g.killsSinceBoss = 0
	}
}

// spawn adds one enemy above the top edge at a random column.
func (g *Game) spawn(kind EnemyKind) {
	v := g.variants[kind]
	v.Speed = g.difficulty.Speed(v.Speed, g.score, g.tick)
	x := g.rng.IntN(max(g.cfg.World.Width-v.W, 0) + 1)
	g.enemies = append(g.enemies, NewEnemy(kind, v, x))
	g.emit(Event{Kind: EventEnemySpawned, Enemy: kind})
}
