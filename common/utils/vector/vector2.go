package vector

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/bytearena/box2d"

	"github.com/botarena/botarena/common/utils/number"
)

// Vector2 is an immutable 2D vector in arena units; every operation returns
// a new value.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

func MakeNullVector2() Vector2 {
	return Vector2{}
}

// MakeUnitVector2 returns the unit vector pointing at heading (radians,
// counter-clockwise from the x axis).
func MakeUnitVector2(heading float64) Vector2 {
	return Vector2{math.Cos(heading), math.Sin(heading)}
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

// Frames carry positions as [x, y] with 4 decimals.
func (v Vector2) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 24)
	b = append(b, '[')
	b = strconv.AppendFloat(b, v.x, 'f', 4, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, v.y, 'f', 4, 64)
	return append(b, ']'), nil
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var coords [2]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}

	v.x, v.y = coords[0], coords[1]
	return nil
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.x + o.x, v.y + o.y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.x - o.x, v.y - o.y}
}

func (v Vector2) MultScalar(f float64) Vector2 {
	return Vector2{v.x * f, v.y * f}
}

func (v Vector2) DivScalar(f float64) Vector2 {
	return Vector2{v.x / f, v.y / f}
}

func (v Vector2) MagSq() float64 {
	return v.x*v.x + v.y*v.y
}

func (v Vector2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize leaves the null vector unchanged.
func (v Vector2) Normalize() Vector2 {
	if mag := v.Mag(); mag > 0 {
		return v.DivScalar(mag)
	}

	return v
}

func (v Vector2) SetMag(mag float64) Vector2 {
	return v.Normalize().MultScalar(mag)
}

func (v Vector2) Limit(max float64) Vector2 {
	if v.MagSq() > max*max {
		return v.SetMag(max)
	}

	return v
}

// Heading is the angle of the vector in radians, counter-clockwise from the
// x axis, in ]-Pi, Pi]. The null vector has heading 0.
func (v Vector2) Heading() float64 {
	if v.IsNull() {
		return 0
	}

	return math.Atan2(v.y, v.x)
}

func (v Vector2) DistanceTo(o Vector2) float64 {
	return o.Sub(v).Mag()
}

// Toward returns the point reached after moving distance from v in the
// direction of target. A negative distance moves away from it. When v and
// target coincide, v is returned.
func (v Vector2) Toward(target Vector2, distance float64) Vector2 {
	direction := target.Sub(v)
	if direction.IsNull() {
		return v
	}

	return v.Add(direction.SetMag(distance))
}

// ClampToRect keeps v inside the axis-aligned rectangle [min, max].
func (v Vector2) ClampToRect(min, max Vector2) Vector2 {
	return Vector2{
		number.Clamp(v.x, min.x, max.x),
		number.Clamp(v.y, min.y, max.y),
	}
}

func (v Vector2) Cross(o Vector2) float64 {
	return v.x*o.y - v.y*o.x
}

func (v Vector2) IsNull() bool {
	return number.IsZero(v.x) && number.IsZero(v.y)
}

func (v Vector2) Equals(o Vector2) bool {
	return o.Sub(v).IsNull()
}

func (v Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(v.x, 5) + ", " + number.FloatToStr(v.y, 5) + ")>"
}

func (v Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.x, v.y)
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return Vector2{v.X, v.Y}
}
