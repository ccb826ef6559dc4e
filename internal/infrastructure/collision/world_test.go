package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

var unit = mgl64.Vec3{1, 1, 1}

func TestWorld_Register(t *testing.T) {
	w := NewWorld(8)

	a := w.Register(mgl64.Vec3{}, unit, false)
	b := w.Register(mgl64.Vec3{5, 0, 0}, unit, true)

	assert.Equal(t, entity.ColliderID(0), a)
	assert.Equal(t, entity.ColliderID(1), b)
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.IsStatic(a))
	assert.True(t, w.IsStatic(b))
}

func TestWorld_RegisterFailures(t *testing.T) {
	t.Run("capacity exceeded", func(t *testing.T) {
		w := NewWorld(2)
		require.True(t, w.Register(mgl64.Vec3{}, unit, false).Valid())
		require.True(t, w.Register(mgl64.Vec3{3, 0, 0}, unit, false).Valid())

		id := w.Register(mgl64.Vec3{6, 0, 0}, unit, false)
		assert.Equal(t, entity.NoCollider, id)
		assert.Equal(t, 2, w.Len())
	})

	t.Run("negative extents", func(t *testing.T) {
		w := NewWorld(2)
		id := w.Register(mgl64.Vec3{}, mgl64.Vec3{1, -1, 1}, false)
		assert.Equal(t, entity.NoCollider, id)
		assert.Equal(t, 0, w.Len())
	})

	t.Run("default capacity", func(t *testing.T) {
		assert.Equal(t, DefaultCapacity, NewWorld(0).Capacity())
	})
}

func TestWorld_QueryAt(t *testing.T) {
	w := NewWorld(8)
	player := w.Register(mgl64.Vec3{0, 0, 0}, unit, false)
	w.Register(mgl64.Vec3{0, -20, 0}, mgl64.Vec3{10, 2, 200}, true)

	tests := []struct {
		name      string
		candidate mgl64.Vec3
		want      bool
	}{
		{"free space", mgl64.Vec3{0, 5, 0}, false},
		{"inside ground", mgl64.Vec3{0, -19.2, 0}, true},
		{"resting on ground", mgl64.Vec3{0, -18.5, 0}, false},
		{"past the tile edge", mgl64.Vec3{5.6, -19.2, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.QueryAt(player, tt.candidate))
		})
	}

	box, _ := w.Volume(player)
	assert.Equal(t, mgl64.Vec3{}, box.Center(), "query does not move the volume")
}

func TestWorld_QueryAtIgnoresSelfAndSensors(t *testing.T) {
	w := NewWorld(8)
	player := w.Register(mgl64.Vec3{}, unit, false)
	goal := w.Register(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{2, 2, 2}, true)

	assert.False(t, w.QueryAt(player, mgl64.Vec3{0.1, 0, 0}), "own volume never blocks")
	assert.True(t, w.QueryAt(player, mgl64.Vec3{2.5, 0, 0}))

	require.True(t, w.SetSensor(goal, true))
	assert.False(t, w.QueryAt(player, mgl64.Vec3{2.5, 0, 0}))

	w.UpdateVolume(player, mgl64.Vec3{2.5, 0, 0}, unit)
	assert.True(t, w.QueryPair(player, goal), "sensors still report pairwise overlap")
}

func TestWorld_QueryAtUnknownID(t *testing.T) {
	w := NewWorld(8)
	w.Register(mgl64.Vec3{}, unit, false)

	assert.False(t, w.QueryAt(entity.NoCollider, mgl64.Vec3{}))
	assert.False(t, w.QueryAt(entity.ColliderID(5), mgl64.Vec3{}))
}

func TestWorld_QueryPair(t *testing.T) {
	w := NewWorld(8)
	a := w.Register(mgl64.Vec3{0, 0, 0}, unit, false)
	b := w.Register(mgl64.Vec3{0.5, 0, 0}, unit, false)
	c := w.Register(mgl64.Vec3{1, 0, 0}, unit, false)

	assert.True(t, w.QueryPair(a, b))
	assert.True(t, w.QueryPair(b, a))
	assert.False(t, w.QueryPair(a, c), "touching faces do not overlap")
	assert.False(t, w.QueryPair(a, a))
	assert.False(t, w.QueryPair(a, entity.NoCollider))
}

func TestWorld_UpdateVolume(t *testing.T) {
	w := NewWorld(8)
	a := w.Register(mgl64.Vec3{}, unit, false)
	b := w.Register(mgl64.Vec3{4, 0, 0}, unit, false)
	require.False(t, w.QueryPair(a, b))

	require.True(t, w.UpdateVolume(a, mgl64.Vec3{3.5, 0, 0}, unit))
	assert.True(t, w.QueryPair(a, b))

	require.True(t, w.UpdateVolume(a, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{8, 1, 1}))
	assert.True(t, w.QueryPair(a, b), "resizing grows the volume")

	assert.False(t, w.UpdateVolume(entity.ColliderID(9), mgl64.Vec3{}, unit))
}

func TestWorld_UpdateTransform(t *testing.T) {
	w := NewWorld(8)
	a := w.Register(mgl64.Vec3{1, 2, 3}, unit, false)

	m, ok := w.Transform(a)
	require.True(t, ok)
	assert.Equal(t, mgl64.Translate3D(1, 2, 3), m)

	scaled := mgl64.Scale3D(2, 2, 2)
	require.True(t, w.UpdateTransform(a, scaled))
	m, _ = w.Transform(a)
	assert.Equal(t, scaled, m)

	box, _ := w.Volume(a)
	assert.Equal(t, unit, box.Size(), "render transform does not touch the volume")

	assert.False(t, w.UpdateTransform(entity.NoCollider, scaled))
}
