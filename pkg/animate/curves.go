package animate

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// CurveByName resolves a preset easing name to its function. Names are
// case-insensitive; the empty string means linear. The second return is
// false for unknown names.
func CurveByName(name string) (ease.TweenFunc, bool) {
	switch strings.ToLower(name) {
	case "", "linear":
		return ease.Linear, true
	case "easein":
		return ease.InQuad, true
	case "easeout":
		return ease.OutQuad, true
	case "easeinout":
		return ease.InOutQuad, true
	case "cubicin":
		return ease.InCubic, true
	case "cubicout":
		return ease.OutCubic, true
	case "cubicinout":
		return ease.InOutCubic, true
	case "expoin":
		return ease.InExpo, true
	case "expoout":
		return ease.OutExpo, true
	case "expoinout":
		return ease.InOutExpo, true
	case "backin":
		return ease.InBack, true
	case "backout":
		return ease.OutBack, true
	case "backinout":
		return ease.InOutBack, true
	case "elasticout":
		return ease.OutElastic, true
	case "bounceout":
		return ease.OutBounce, true
	default:
		return nil, false
	}
}
