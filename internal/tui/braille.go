package tui

type brailleBuf struct {
	w, h int           // in cells
	m    [][]uint8     // per-cell 8-bit mask
	cls  [][]cellClass // strongest class drawn into the cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	cls := make([][]cellClass, h)
	for i := range m {
		m[i] = make([]uint8, w)
		cls[i] = make([]cellClass, w)
	}
	return &brailleBuf{w: w, h: h, m: m, cls: cls}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c cellClass) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if c > b.cls[cy][cx] {
		b.cls[cy][cx] = c
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c cellClass) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillRectMicro sets every micro-pixel in [x0,x1) x [y0,y1).
func (b *brailleBuf) fillRectMicro(x0, y0, x1, y1 int, c cellClass) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.setPixel(x, y, c)
		}
	}
}

// fillDiscMicro sets the micro-pixels within r of (cx, cy).
func (b *brailleBuf) fillDiscMicro(cx, cy, r int, c cellClass) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				b.setPixel(cx+x, cy+y, c)
			}
		}
	}
}

// composite copies every non-empty braille cell onto g at (ox, oy).
func (b *brailleBuf) composite(g *grid, ox, oy int) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask != 0 {
				g.put(ox+x, oy+y, rune(0x2800+int(mask)), b.cls[y][x])
			}
		}
	}
}
