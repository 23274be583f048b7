package raycaster

// Projectile is a point moving with a velocity vector.
type Projectile struct {
	Position Tuple
	Velocity Tuple
}

// Environment applies gravity and wind to a projectile every tick.
type Environment struct {
	Gravity Tuple
	Wind    Tuple
}

// Tick advances the projectile by one step.
func (env Environment) Tick(p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// PlotTrajectory ticks p until it falls below y == 0 (or maxTicks is hit) and
// plots each position with y pointing up. Positions that fall off the canvas
// are skipped.
func PlotTrajectory(c *Canvas, p Projectile, env Environment, col Colour, maxTicks int) (ticks, plotted int) {
	for p.Position.Y >= 0 && ticks < maxTicks {
		p = env.Tick(p)
		ticks++
		if err := c.Write(int(p.Position.X), c.Height-int(p.Position.Y), col); err == nil {
			plotted++
		}
	}
	DebugLog("Projectile landed after %d ticks, %d plotted", ticks, plotted)
	return ticks, plotted
}
