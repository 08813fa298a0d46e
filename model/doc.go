// Package model defines the identity and element types shared by the
// geometry index and its collaborators.
//
// # Identity Types
//
//   - NodeID: stable node identifier assigned by the host graph
//   - EdgeID: stable edge identifier assigned by the host graph
//   - Key: the (Kind, ID) pair that identifies an indexed Element
//
// # Elements
//
// Element is a closed tagged union of a node geometry (a point) and an edge
// geometry (a segment). Two elements with the same Key are the same element,
// whatever geometry they currently carry:
//
//	a := model.NewNode(7, geom.Pt(0, 0))
//	b := model.NewNode(7, geom.Pt(5, 5))
//	a.Key() == b.Key() // true
package model
