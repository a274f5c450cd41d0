// Package bmssp computes bounded multi-source shortest paths: the distance
// from the nearest source to every node, finalized only below a caller
// supplied bound B.
//
// The engine is multi-source Dijkstra with a lazy-deletion min-heap. It stops
// at the first popped entry with distance >= B and reports that distance as
// the boundary value B', the point where a subsequent pass with a raised
// bound should resume. If the heap drains before the bound is reached, B' is
// the smallest relaxation candidate that crossed the bound, or the infinity
// sentinel when no edge ever reached it.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, but bounded runs settle only the
//     nodes within distance B of the sources.
//   - Space: O(V + E); under lazy deletion the heap holds up to one entry per
//     push, not per node.
package bmssp
