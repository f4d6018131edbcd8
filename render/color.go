package render

// RGBA stores explicit 8-bit color channels with straight (non-premultiplied) alpha
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Transparent = RGBA{0, 0, 0, 0}
)

// Opaque returns c with full alpha
func (c RGBA) Opaque() RGBA {
	c.A = 255
	return c
}

// WithAlpha returns c with its alpha channel replaced
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Blend performs source-over alpha blending of src onto dst.
// extra scales the source alpha on top of src's own channel (255 = unchanged).
func (dst RGBA) Blend(src RGBA, extra uint8) RGBA {
	sa := uint32(src.A) * uint32(extra) / 255
	if sa == 0 {
		return dst
	}
	if sa >= 255 && dst.A == 255 {
		return RGBA{src.R, src.G, src.B, 255}
	}
	da := uint32(dst.A)
	inv := 255 - sa
	// Straight-alpha source-over: out = src*sa + dst*da*(1-sa)
	oa := sa + da*inv/255
	if oa == 0 {
		return Transparent
	}
	blendCh := func(s, d uint8) uint8 {
		v := (uint32(s)*sa + uint32(d)*da*inv/255) / oa
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return RGBA{
		R: blendCh(src.R, dst.R),
		G: blendCh(src.G, dst.G),
		B: blendCh(src.B, dst.B),
		A: uint8(oa),
	}
}

// Scale multiplies all channels by opacity in [0,1], dimming toward transparent black
func (c RGBA) Scale(opacity float64) RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return Transparent
	}
	return RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (dst RGBA) Add(src RGBA) RGBA {
	return RGBA{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
		A: max(dst.A, src.A),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (dst RGBA) Max(src RGBA) RGBA {
	return RGBA{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
		A: max(dst.A, src.A),
	}
}
