package quadtree

import (
	"errors"

	"github.com/fmstephe/spacegrid/pkg/freelist"
	"github.com/fmstephe/spacegrid/pkg/geom"
)

// ErrOutOfBounds is returned by Insert when an element's rectangle is not
// fully contained in the tree's root rectangle. No state is mutated.
var ErrOutOfBounds = errors.New("quadtree: element rectangle is not contained in the root rectangle")

// Config holds the three policy knobs fixed at construction. The defaults
// in DefaultConfig match typical gaming workloads, per the spec's external
// interface notes.
type Config struct {
	MaxDepth         int
	MaxNumElements   int
	SmallestCellSize int32
}

// DefaultConfig returns depth 8, 16 elements per leaf, smallest cell 1.
func DefaultConfig() Config {
	return Config{
		MaxDepth:         8,
		MaxNumElements:   16,
		SmallestCellSize: 1,
	}
}

// Stats reports occupancy, supplementing the public surface with the kind
// of diagnostic accessor github.com/fmstephe/location-system's
// objectstore.Store exposes via GetStats.
type Stats struct {
	NumElements   int
	NumNodes      int
	FreeNodeSlots int
}

// Tree is the public surface of the quadtree. Id is an opaque, caller-chosen
// hashable value (a uint32 is the canonical choice); inserting the same id
// twice while it is still live is a programmer error, not validated outside
// debug builds.
type Tree[Id comparable] interface {
	Insert(id Id, rect geom.AABB) error
	Remove(id Id) bool

	IntersectAABB(rect geom.AABB) map[Id]struct{}
	IntersectAABBCallback(rect geom.AABB, fn func(Id))
	IntersectShape(shape Shape) map[Id]struct{}
	IntersectShapeCallback(shape Shape, fn func(Id))

	VisitLeaves(fn func(cell geom.AABB, elementCount int))
	Cleanup() bool
	Stats() Stats
}

// tree is the sole implementation of Tree.
type tree[Id comparable] struct {
	root   geom.AABB
	config Config

	elementIDs   *freelist.List[Id]
	elementRects *freelist.List[geom.AABB]
	elementNodes *freelist.List[elementNode]

	// idToHandle lets Remove resolve a caller's id back to the handle
	// shared by elementIDs and elementRects, without requiring callers
	// to retain handles themselves - not mandated by the data model, but
	// not excluded by it either.
	idToHandle map[Id]freelist.Handle

	nodes              []node
	firstFreeNodeGroup uint32
}

// New builds an empty tree bounded by root. Panics if config is malformed -
// max_num_elements and smallest_cell_size of zero are programmer errors per
// the spec's error handling design, checked unconditionally since they are
// construction-time mistakes rather than steady-state conditions worth
// gating behind debugAssertionsEnabled.
func New[Id comparable](root geom.AABB, config Config) Tree[Id] {
	if config.MaxNumElements <= 0 {
		panic("quadtree: MaxNumElements must be greater than zero")
	}
	if config.SmallestCellSize <= 0 {
		panic("quadtree: SmallestCellSize must be greater than zero")
	}

	return &tree[Id]{
		root:               root,
		config:             config,
		elementIDs:         freelist.New[Id](),
		elementRects:       freelist.New[geom.AABB](),
		elementNodes:       freelist.New[elementNode](),
		idToHandle:         make(map[Id]freelist.Handle),
		nodes:              []node{emptyLeaf()},
		firstFreeNodeGroup: noFreeGroup,
	}
}

func (t *tree[Id]) Stats() Stats {
	free := 0
	for g := t.firstFreeNodeGroup; g != noFreeGroup; g = t.nodes[g].firstChildOrElement {
		free += groupSize
	}
	return Stats{
		NumElements:   len(t.idToHandle),
		NumNodes:      len(t.nodes),
		FreeNodeSlots: free,
	}
}
