package color

import "math"

// Constants from the apca-w3 0.1.9 SA98G table.
const (
	apcaMainTRC = 2.4
	apcaRCo     = 0.2126729
	apcaGCo     = 0.7151522
	apcaBCo     = 0.0721750

	apcaNormBG  = 0.56
	apcaNormTxt = 0.57
	apcaRevBG   = 0.65
	apcaRevTxt  = 0.62

	apcaBlkThrs = 0.022
	apcaBlkClmp = 1.414

	apcaScale     = 1.14
	apcaLoOffset  = 0.027
	apcaDeltaYMin = 0.0005
	apcaLoClip    = 0.1
)

// APCALc computes the APCA lightness contrast value for text over a
// background. Positive Lc means dark text on a light background, negative
// the reverse; |Lc| >= 60 is roughly WCAG AA for body text. The transfer
// curve is apca-w3's plain power function, not the WCAG piecewise one.
func APCALc(textHex, bgHex string) float64 {
	linearize := func(c uint8) float64 {
		return math.Pow(float64(c)/255.0, apcaMainTRC)
	}

	tr, tg, tb := ParseHexRGB(textHex)
	br, bg, bb := ParseHexRGB(bgHex)

	txtY := apcaRCo*linearize(tr) + apcaGCo*linearize(tg) + apcaBCo*linearize(tb)
	bgY := apcaRCo*linearize(br) + apcaGCo*linearize(bg) + apcaBCo*linearize(bb)

	if txtY <= apcaBlkThrs {
		txtY += math.Pow(apcaBlkThrs-txtY, apcaBlkClmp)
	}
	if bgY <= apcaBlkThrs {
		bgY += math.Pow(apcaBlkThrs-bgY, apcaBlkClmp)
	}

	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0.0
	}

	var out float64
	if bgY > txtY {
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTxt)) * apcaScale
		if sapc < apcaLoClip {
			out = 0.0
		} else {
			out = sapc - apcaLoOffset
		}
	} else {
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTxt)) * apcaScale
		if sapc > -apcaLoClip {
			out = 0.0
		} else {
			out = sapc + apcaLoOffset
		}
	}

	return out * 100.0
}
