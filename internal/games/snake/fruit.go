package snake

// updateFruit applies the placement rule once: relocate when the countdown
// has run out, otherwise count down. Reports whether the fruit moved.
func (g *Game) updateFruit() (bool, error) {
	if g.fruit.TicksUntilRespawn > 0 {
		g.fruit.TicksUntilRespawn--
		return false, nil
	}

	p, err := g.placeFruit()
	if err != nil {
		return false, err
	}
	g.fruit.Position = p
	g.fruit.TicksUntilRespawn = g.fruit.RespawnInterval
	return true, nil
}

// placeFruit picks a random interior cell not covered by the body.
// Sampling is bounded; after maxAttempts misses the free cells are
// enumerated and one is chosen uniformly.
func (g *Game) placeFruit() (Point, error) {
	occupied := make(map[Point]struct{}, len(g.player.Body))
	for _, seg := range g.player.Body {
		occupied[seg] = struct{}{}
	}

	gridW := g.width / g.cellSize
	gridH := g.height / g.cellSize

	for range g.maxAttempts {
		p := Point{
			X: g.randomFromTo(1, gridW-2) * g.cellSize,
			Y: g.randomFromTo(1, gridH-2) * g.cellSize,
		}
		if _, taken := occupied[p]; !taken {
			return p, nil
		}
	}

	free := g.freeCells(occupied)
	if len(free) == 0 {
		return Unplaced, ErrNoFreeCell
	}
	return free[g.rng.Intn(len(free))], nil
}

// freeCells lists interior cells that are not occupied, row by row.
func (g *Game) freeCells(occupied map[Point]struct{}) []Point {
	var free []Point
	for y := g.interior.Y; y < g.interior.Bottom(); y += g.cellSize {
		for x := g.interior.X; x < g.interior.Right(); x += g.cellSize {
			p := Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}

// randomFromTo returns a uniform integer in [from, to].
func (g *Game) randomFromTo(from, to int) int {
	return from + g.rng.Intn(to-from+1)
}
