// Package geometry maps cursor positions around a menu center onto the
// discrete directions and item slots of the radial menu.
//
// All angles are in degrees, 0° pointing east and growing clockwise because
// screen Y grows downward.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DeadZone is the angular distance from a direction at which it stops
	// being selectable; the diagonals sit exactly on it.
	DeadZone = 45.0

	// PreviewRatio is the fraction of the main radius past which the root
	// wheel previews a direction.
	PreviewRatio = 0.5

	// HitSlack is added to the item radius for hover hit-testing.
	HitSlack = 6

	// SubRingGap keeps sub items clear of the main circle's outline.
	SubRingGap = 10

	itemStartAngle = -90.0
)

// Point is a position in screen coordinates.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is one of the four fixed menu directions.
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

// Directions lists the four directions in configuration order.
var Directions = []Direction{North, East, South, West}

var directionNames = map[Direction]string{
	East:  "east",
	South: "south",
	West:  "west",
	North: "north",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Label is the default display label, the capitalized name.
func (d Direction) Label() string {
	name := d.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Angle returns the fixed angle of the direction.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

// ParseDirection converts a configuration key into a Direction.
func ParseDirection(name string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for d, n := range directionNames {
		if n == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// MarshalText implements encoding.TextMarshaler so directions can key maps
// in configuration documents.
func (d Direction) MarshalText() ([]byte, error) {
	if _, ok := directionNames[d]; !ok {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DistanceAndAngle returns the distance of cursor from center and the angle
// of the offset normalized to [0,360).
func DistanceAndAngle(cursor, center Point) (float64, float64) {
	dx := float64(cursor.X - center.X)
	dy := float64(cursor.Y - center.Y)
	theta := math.Atan2(dy, dx) * 180 / math.Pi
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		theta -= 360
	}
	return math.Hypot(dx, dy), theta
}

// angularDiff is the circular distance between two angles, in [0,180].
func angularDiff(a, b float64) float64 {
	diff := math.Abs(math.Mod(a-b, 360))
	return math.Min(diff, 360-diff)
}

// NearestDirection picks the direction closest to theta. Angles at or past
// DeadZone from every direction, the diagonals, yield no direction.
func NearestDirection(theta float64) (Direction, bool) {
	best := East
	minDiff := 360.0
	for _, d := range []Direction{East, South, West, North} {
		if diff := angularDiff(theta, d.Angle()); diff < minDiff {
			minDiff = diff
			best = d
		}
	}
	if minDiff >= DeadZone {
		return 0, false
	}
	return best, true
}

// PreviewDirection is the advisory direction shown on the root wheel once
// the cursor is past half the main radius.
func PreviewDirection(d, theta float64, mainRadius int) (Direction, bool) {
	if d <= PreviewRatio*float64(mainRadius) {
		return 0, false
	}
	return NearestDirection(theta)
}

// CrossedThreshold reports whether d lies strictly outside the main circle.
func CrossedThreshold(d float64, mainRadius int) bool {
	return d > float64(mainRadius)
}

// ItemLayoutAngle returns the angle of item i out of n, starting north and
// spaced evenly clockwise.
func ItemLayoutAngle(i, n int) float64 {
	if n <= 0 {
		return itemStartAngle
	}
	return itemStartAngle + (360/float64(n))*float64(i)
}

// ItemPosition returns the center of item i on a ring of the given radius.
func ItemPosition(center Point, radius, i, n int) (float64, float64) {
	rad := ItemLayoutAngle(i, n) * math.Pi / 180
	return float64(center.X) + math.Cos(rad)*float64(radius),
		float64(center.Y) + math.Sin(rad)*float64(radius)
}

// NearestItem returns the lowest index whose item center lies within
// itemRadius+HitSlack of the cursor.
func NearestItem(cursor, center Point, subRadius, n, itemRadius int) (int, bool) {
	limit := float64(itemRadius + HitSlack)
	for i := 0; i < n; i++ {
		px, py := ItemPosition(center, subRadius, i, n)
		if math.Hypot(float64(cursor.X)-px, float64(cursor.Y)-py) < limit {
			return i, true
		}
	}
	return 0, false
}

// UnitVector returns the screen-space unit step of a direction.
func UnitVector(d Direction) Point {
	switch d {
	case East:
		return Point{X: 1}
	case South:
		return Point{Y: 1}
	case West:
		return Point{X: -1}
	case North:
		return Point{Y: -1}
	}
	return Point{}
}

// Offset returns the point at distance r from p in direction d.
func Offset(p Point, d Direction, r int) Point {
	u := UnitVector(d)
	return Point{X: p.X + u.X*r, Y: p.Y + u.Y*r}
}

// EffectiveSubRadius keeps sub items outside the main circle however small
// the configured ring is.
func EffectiveSubRadius(subRadius, mainRadius, itemSize int) int {
	minimum := mainRadius + SubRingGap + itemSize
	if subRadius < minimum {
		return minimum
	}
	return subRadius
}
