package collision

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/boxworld/internal/domain/entity"
)

const benchVolumes = 1024

func newBenchWorld() (*World, entity.ColliderID) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld(benchVolumes + 1)
	probe := w.Register(mgl64.Vec3{0, 100, 0}, mgl64.Vec3{1, 1, 1}, false)
	for i := 0; i < benchVolumes; i++ {
		center := mgl64.Vec3{rng.Float64()*100 - 50, rng.Float64()*100 - 50, 0}
		w.Register(center, mgl64.Vec3{1, 1, 1}, true)
	}
	return w, probe
}

// QueryAt with the cp.BB pre-test in front of the strict 3D test
func BenchmarkQueryAt(b *testing.B) {
	w, probe := newBenchWorld()
	candidate := mgl64.Vec3{0, 60, 0}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = w.QueryAt(probe, candidate)
	}
}

// The same sweep with the strict 3D test only
func BenchmarkQueryAt_AABBOnly(b *testing.B) {
	w, probe := newBenchWorld()
	v, _ := w.get(probe)
	box := NewAABB(mgl64.Vec3{0, 60, 0}, v.box.Size())

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		hit := false
		for i := range w.volumes {
			if entity.ColliderID(i) == probe {
				continue
			}
			if box.Overlaps(w.volumes[i].box) {
				hit = true
				break
			}
		}
		_ = hit
	}
}

func BenchmarkQueryPair(b *testing.B) {
	w, probe := newBenchWorld()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = w.QueryPair(probe, entity.ColliderID(1+n%benchVolumes))
	}
}
