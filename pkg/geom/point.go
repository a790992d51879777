// Package geom holds the integer geometry primitives shared by the
// quadtree: points, axis-aligned bounding boxes in both edge and
// center/half-extent form, and rectangle-rectangle intersection. Coordinates
// are signed 32 bit integers throughout - callers quantize floating point
// input before it reaches this package. Adapted from the floating-point
// View type in github.com/fmstephe/location-system's pkg/lowgc_quadtree,
// generalised to the edge/center dual representation the quadtree's split
// and query paths each want.
package geom

// Point is a location in the integer plane.
type Point struct {
	X, Y int32
}
