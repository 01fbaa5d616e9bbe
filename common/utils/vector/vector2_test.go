package vector_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botarena/botarena/common/utils/vector"
)

func TestHeading(t *testing.T) {
	assert.InDelta(t, 0, vector.MakeVector2(1, 0).Heading(), 1e-9)
	assert.InDelta(t, math.Pi/2, vector.MakeVector2(0, 3).Heading(), 1e-9)
	assert.InDelta(t, 0, vector.MakeNullVector2().Heading(), 1e-9)
}

func TestDistanceAndLimit(t *testing.T) {
	a := vector.MakeVector2(1, 1)
	b := vector.MakeVector2(4, 5)

	assert.InDelta(t, 5, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 2, b.Limit(2).Mag(), 1e-9)
	assert.True(t, a.Limit(10).Equals(a))
}

func TestJSONRoundtrip(t *testing.T) {
	data, err := json.Marshal(vector.MakeVector2(1.5, -2))
	require.NoError(t, err)
	assert.Equal(t, "[1.5000,-2.0000]", string(data))

	var v vector.Vector2
	require.NoError(t, json.Unmarshal([]byte("[3, 4]"), &v))
	assert.InDelta(t, 5, v.Mag(), 1e-9)
}

func TestToward(t *testing.T) {
	from := vector.MakeVector2(100, 100)
	target := vector.MakeVector2(100, 500)

	assert.True(t, from.Toward(target, 150).Equals(vector.MakeVector2(100, 250)))
	assert.True(t, from.Toward(target, -50).Equals(vector.MakeVector2(100, 50)))
	assert.True(t, from.Toward(from, 10).Equals(from))
}

func TestClampToRect(t *testing.T) {
	min := vector.MakeVector2(10, 10)
	max := vector.MakeVector2(990, 990)

	assert.True(t, vector.MakeVector2(-5, 500).ClampToRect(min, max).Equals(vector.MakeVector2(10, 500)))
	assert.True(t, vector.MakeVector2(1200, 1200).ClampToRect(min, max).Equals(max))
	assert.True(t, vector.MakeVector2(400, 600).ClampToRect(min, max).Equals(vector.MakeVector2(400, 600)))
}
