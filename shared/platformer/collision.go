package platformer

// moveX applies hspeed and pushes the player out of any tile it moved into.
// Overlap while hspeed is zero is left alone.
func (p *Player) moveX() {
	p.Rect.X += p.HSpeed

	cx, cy := p.Rect.Center()
	for _, tile := range p.deps.Tiles.RectsNear(cx, cy) {
		if !p.Rect.Overlaps(tile) {
			continue
		}
		if p.HSpeed > 0 {
			p.Rect.SetRight(tile.Left())
			p.Collisions.Right = true
		}
		if p.HSpeed < 0 {
			p.Rect.SetLeft(tile.Right())
			p.Collisions.Left = true
		}
	}

	if p.rev.ScreenBounded {
		width := float64(p.rev.ScreenWidth)
		if p.HSpeed < 0 && p.Rect.Left() < 0 {
			p.Rect.SetLeft(0)
			p.Collisions.Left = true
		}
		if p.HSpeed > 0 && p.Rect.Right() > width {
			p.Rect.SetRight(width)
			p.Collisions.Right = true
		}
	}

	if p.Collisions.Left || p.Collisions.Right {
		p.HSpeed = 0
	}
}

// moveY applies vspeed against tiles already around the new horizontal
// position.
func (p *Player) moveY() {
	p.Rect.Y += p.VSpeed

	cx, cy := p.Rect.Center()
	for _, tile := range p.deps.Tiles.RectsNear(cx, cy) {
		if !p.Rect.Overlaps(tile) {
			continue
		}
		if p.VSpeed > 0 {
			p.Rect.SetBottom(tile.Top())
			p.Collisions.Down = true
		}
		if p.VSpeed < 0 {
			p.Rect.SetTop(tile.Bottom())
			p.Collisions.Up = true
		}
	}

	if p.rev.ScreenBounded {
		height := float64(p.rev.ScreenHeight)
		if p.VSpeed > 0 && p.Rect.Bottom() > height {
			p.Rect.SetBottom(height)
			p.Collisions.Down = true
		}
	}

	if p.Collisions.Up || p.Collisions.Down {
		p.VSpeed = 0
	}
}
