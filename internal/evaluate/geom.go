package evaluate

import "github.com/janadahlmanns/OrganIQ/internal/content"

// PointInPolygon reports whether p lies inside poly using even-odd ray
// casting. The small denominator offset keeps horizontal edges from
// dividing by zero.
func PointInPolygon(p content.Point, poly []content.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		intersects := (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi+0.0001)+xi
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// ResolveRegion returns the name of the first region containing p, or
// ("", false) when no region does.
func ResolveRegion(p content.Point, regions []content.Region) (string, bool) {
	for _, r := range regions {
		if PointInPolygon(p, r.Points) {
			return r.Name, true
		}
	}
	return "", false
}

// Centroid returns the arithmetic mean of a polygon's vertices. The UI
// uses it as the drop position when placing a label onto a chosen region.
func Centroid(points []content.Point) content.Point {
	if len(points) == 0 {
		return content.Point{}
	}
	var c content.Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(points))
	c.Y /= float64(len(points))
	return c
}
