// Package forest implements an intrusive, re-parentable forest keyed by
// string identity, generic over the edge payload type.
//
// The MCR engine's policy-iteration loop repeatedly moves whole subtrees to
// a new parent as it tightens its longest-paths tree; re-parenting must be
// O(1) and pre-order traversal must visit a subtree without rebuilding any
// index. Forest stores children as a circular doubly-linked sibling list
// per parent (mirroring the teacher's intrusive-pointer style elsewhere in
// the pack), so unlink/appendChild never walk more than their own node.
package forest
