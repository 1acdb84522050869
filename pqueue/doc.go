// Package pqueue implements IndexedPQ, a vertex-keyed indexed min-heap.
//
// The MCR engine needs to push a per-vertex pivot candidate, look it up by
// vertex, lower it ("decrease-key") as tighter candidates are discovered,
// and pop the single most-improving pivot across the whole graph — all in
// O(log N). IndexedPQ is a textbook binary heap (as lvlath's dijkstra
// package builds with container/heap) augmented with a key->heap-position
// table so Set/Delete/Contains are O(log N) and O(1) respectively instead
// of requiring a linear scan.
package pqueue
