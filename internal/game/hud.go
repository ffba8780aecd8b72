package game

// BuildHUDMesh produces the speedometer bar in framebuffer pixel space: a
// dark track along the bottom edge with a fill proportional to |speed|.
// Reverse is shown in a colder tint.
func BuildHUDMesh(speed, maxSpeed float64, fbW, fbH int, buf []float32) []float32 {
	buf = buf[:0]

	const barH = 14.0
	const pad = 24.0
	trackW := float64(fbW) - 2*pad
	y := float64(fbH) - pad

	buf = pushQuad(buf, float64(fbW)/2, y, trackW/2, barH/2, 0, 0.10, 0.10, 0.12)

	frac := clampF(absF(speed)/maxSpeed, 0, 1)
	if frac <= 0 {
		return buf
	}
	fillW := trackW * frac
	var cr, cg, cb float32 = 0.92, float32(0.80 - 0.55*frac), 0.15
	if speed < 0 {
		cr, cg, cb = 0.30, 0.55, 0.90
	}
	return pushQuad(buf, pad+fillW/2, y, fillW/2, barH/2-2, 0, cr, cg, cb)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
