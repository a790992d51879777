package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmstephe/spacegrid/pkg/geom"
)

func rect(left, top, right, bottom int32) geom.AABB {
	return geom.NewAABB(left, top, right, bottom)
}

// Scenario S1: quadrant isolation.
func TestQuadrantIsolation(t *testing.T) {
	root := rect(-20, -20, 20, 20)
	tr := New[int](root, Config{MaxDepth: 1, MaxNumElements: 1, SmallestCellSize: 1})

	elements := map[int]geom.AABB{
		1000: rect(-15, -15, -5, -5),
		1001: rect(-20, -20, -18, -18),
		2000: rect(5, -15, 15, -5),
		3000: rect(-15, 5, -5, 15),
		4000: rect(5, 5, 15, 15),
		5000: rect(-5, -5, 5, 5),
	}
	for id, r := range elements {
		require.NoError(t, tr.Insert(id, r))
	}

	got := tr.IntersectAABB(rect(-17, -17, 0, 0))
	assert.Contains(t, got, 1000)
	assert.Contains(t, got, 5000)
	assert.NotContains(t, got, 1001)
	assert.NotContains(t, got, 2000)
	assert.NotContains(t, got, 3000)
	assert.NotContains(t, got, 4000)
}

func buildS1(t *testing.T) Tree[int] {
	t.Helper()
	root := rect(-20, -20, 20, 20)
	tr := New[int](root, Config{MaxDepth: 1, MaxNumElements: 1, SmallestCellSize: 1})

	elements := map[int]geom.AABB{
		1000: rect(-15, -15, -5, -5),
		1001: rect(-20, -20, -18, -18),
		2000: rect(5, -15, 15, -5),
		3000: rect(-15, 5, -5, 15),
		4000: rect(5, 5, 15, 15),
		5000: rect(-5, -5, 5, 5),
	}
	for id, r := range elements {
		require.NoError(t, tr.Insert(id, r))
	}
	return tr
}

func countElementRefs(t Tree[int]) int {
	count := 0
	t.VisitLeaves(func(_ geom.AABB, elementCount int) { count += elementCount })
	return count
}

// Scenario S2: remove first, then last.
func TestRemoveFirstThenLast(t *testing.T) {
	tr := buildS1(t)
	before := countElementRefs(tr)

	require.True(t, tr.Remove(1000))
	assert.Equal(t, 5, len(tr.IntersectAABB(rect(-20, -20, 20, 20))))
	assert.Equal(t, before-3, countElementRefs(tr))

	require.True(t, tr.Remove(5000))
	assert.Equal(t, 4, len(tr.IntersectAABB(rect(-20, -20, 20, 20))))

	assert.False(t, tr.Cleanup())
}

// Scenario S3: full removal then compact.
func TestFullRemovalThenCompact(t *testing.T) {
	tr := buildS1(t)
	for _, id := range []int{1000, 1001, 2000, 3000, 4000, 5000} {
		require.True(t, tr.Remove(id))
	}

	assert.Equal(t, 0, countElementRefs(tr))

	tt := tr.(*tree[int])
	assert.True(t, isBranch(tt.nodes[0]))

	assert.True(t, tr.Cleanup())
	assert.False(t, isBranch(tt.nodes[0]))
	assert.Equal(t, uint32(0), tt.nodes[0].elementCount)
}

// Ray implements Shape by intersecting an AABB with a half-infinite line,
// per scenario S4.
type Ray struct {
	OriginX, OriginY int32
	DirX, DirY       int32
}

func (r Ray) Intersects(box geom.AABB) bool {
	if r.DirX == 0 && r.DirY == 0 {
		return box.ContainsPoint(geom.Point{X: r.OriginX, Y: r.OriginY})
	}

	tMin, tMax := negInf, posInf
	if r.DirX != 0 {
		t1 := float64(box.Left()-r.OriginX) / float64(r.DirX)
		t2 := float64(box.Right()-r.OriginX) / float64(r.DirX)
		tMin, tMax = clampSlab(tMin, tMax, t1, t2)
	} else if r.OriginX < box.Left() || r.OriginX > box.Right() {
		return false
	}

	if r.DirY != 0 {
		t1 := float64(box.Top()-r.OriginY) / float64(r.DirY)
		t2 := float64(box.Bottom()-r.OriginY) / float64(r.DirY)
		tMin, tMax = clampSlab(tMin, tMax, t1, t2)
	} else if r.OriginY < box.Top() || r.OriginY > box.Bottom() {
		return false
	}

	return tMax >= tMin && tMax >= 0
}

const (
	negInf = -1e18
	posInf = 1e18
)

func clampSlab(tMin, tMax, t1, t2 float64) (float64, float64) {
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tMin {
		tMin = t1
	}
	if t2 < tMax {
		tMax = t2
	}
	return tMin, tMax
}

// Scenario S4: ray intersection via predicate.
func TestRayIntersectionViaPredicate(t *testing.T) {
	tr := buildS1(t)

	ray := Ray{OriginX: 1, OriginY: 8, DirX: 1, DirY: 0}
	got := tr.IntersectShape(ray)

	assert.Contains(t, got, 4000) // rect(5,5,15,15) lies on y=8, ahead of x=1
	assert.NotContains(t, got, 3000) // rect(-15,5,-5,15) is behind the ray's origin on x
}

// Scenario S6: large fan-out robustness.
func TestLargeFanOutRobustness(t *testing.T) {
	root := rect(-16, -16, 16, 16)
	tr := New[int](root, Config{MaxDepth: 8, MaxNumElements: 1, SmallestCellSize: 1})

	id := 0
	for x := int32(-16); x < 16; x++ {
		for y := int32(-16); y < 16; y++ {
			require.NoError(t, tr.Insert(id, rect(x, y, x+1, y+1)))
			id++
		}
	}
	require.Equal(t, 1024, id)

	got := tr.IntersectAABB(root)
	assert.Len(t, got, 1024)
}

func TestInsertOutOfBounds(t *testing.T) {
	root := rect(0, 0, 10, 10)
	tr := New[int](root, DefaultConfig())
	err := tr.Insert(1, rect(5, 5, 20, 20))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Empty(t, tr.IntersectAABB(root))
}

func TestRemoveUnknownIdReturnsFalse(t *testing.T) {
	tr := New[int](rect(0, 0, 10, 10), DefaultConfig())
	assert.False(t, tr.Remove(42))
}

func TestStats(t *testing.T) {
	tr := buildS1(t)
	stats := tr.Stats()
	assert.Equal(t, 6, stats.NumElements)
	assert.True(t, stats.NumNodes > 1)
}
