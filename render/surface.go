package render

import (
	"image"
)

// Surface is a mutable RGBA pixel buffer owned by exactly one window.
// All drawing and compositing in the engine goes through surfaces.
type Surface struct {
	img    *image.RGBA
	width  int
	height int
}

// NewSurface creates a transparent surface of the given pixel dimensions
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Width returns the pixel width
func (s *Surface) Width() int { return s.width }

// Height returns the pixel height
func (s *Surface) Height() int { return s.height }

// Image exposes the backing image for zero-copy export to displays and scalers
func (s *Surface) Image() *image.RGBA { return s.img }

// At returns the pixel color at (x, y), transparent if out of bounds
func (s *Surface) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Transparent
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	return RGBA{p[0], p[1], p[2], p[3]}
}

// Set overwrites the pixel at (x, y), silently clipped
func (s *Surface) Set(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill overwrites every pixel with c, alpha included (clear, not blend)
func (s *Surface) Fill(c RGBA) {
	pix := s.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	// Exponential copy to fill the rest
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// clipRect intersects a rect with the surface bounds
func (s *Surface) clipRect(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > s.width {
		w = s.width - x
	}
	if y+h > s.height {
		h = s.height - y
	}
	return x, y, w, h
}

// FillRect overwrites a rectangle with c, silently clipped to the surface
func (s *Surface) FillRect(x, y, w, h int, c RGBA) {
	x, y, w, h = s.clipRect(x, y, w, h)
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		i := s.img.PixOffset(x, row)
		for col := 0; col < w; col++ {
			p := s.img.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
}

// BlendRect alpha-blends c over a rectangle. extra scales c's own alpha
// channel (255 = use it as-is), silently clipped to the surface.
func (s *Surface) BlendRect(x, y, w, h int, c RGBA, extra uint8) {
	x, y, w, h = s.clipRect(x, y, w, h)
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		i := s.img.PixOffset(x, row)
		for col := 0; col < w; col++ {
			p := s.img.Pix[i : i+4 : i+4]
			out := RGBA{p[0], p[1], p[2], p[3]}.Blend(c, extra)
			p[0], p[1], p[2], p[3] = out.R, out.G, out.B, out.A
			i += 4
		}
	}
}

// Blit source-over blends src onto the surface with its top-left corner at
// (x, y). extra attenuates the source alpha uniformly (whole-layer alpha).
// Pixels falling outside the surface are silently clipped.
func (s *Surface) Blit(src *image.RGBA, x, y int, extra uint8) {
	if src == nil || extra == 0 {
		return
	}
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	// Clip against destination
	sx, sy := 0, 0
	if x < 0 {
		sx = -x
		srcW += x
		x = 0
	}
	if y < 0 {
		sy = -y
		srcH += y
		y = 0
	}
	if x+srcW > s.width {
		srcW = s.width - x
	}
	if y+srcH > s.height {
		srcH = s.height - y
	}
	if srcW <= 0 || srcH <= 0 {
		return
	}
	for row := 0; row < srcH; row++ {
		di := s.img.PixOffset(x, y+row)
		si := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy+row)
		for col := 0; col < srcW; col++ {
			sp := src.Pix[si : si+4 : si+4]
			if sp[3] != 0 {
				dp := s.img.Pix[di : di+4 : di+4]
				out := RGBA{dp[0], dp[1], dp[2], dp[3]}.Blend(RGBA{sp[0], sp[1], sp[2], sp[3]}, extra)
				dp[0], dp[1], dp[2], dp[3] = out.R, out.G, out.B, out.A
			}
			di += 4
			si += 4
		}
	}
}
