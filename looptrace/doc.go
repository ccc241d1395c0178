// Package looptrace discovers the closed pipe loop through the start tile
// of a pipegrid.Grid with a breadth-first search over the implicit graph
// defined by pipegrid.Compatible.
//
// What
//
//   - Trace seeds a FIFO worklist with grid.Start() and follows every
//     in-bounds neighbour the connectivity rule accepts, enqueueing each
//     tile the first time it is discovered.
//   - The returned Loop holds the tile set, the visit order, the BFS depth
//     of every tile and the half-length |Tiles|/2 (the distance from Start
//     to the farthest point of an even-length simple cycle).
//   - Validate checks that every member has exactly two member neighbours.
//   - InferStart recovers the real pipe shape hidden under 'S'.
//
// Why
//
//   - No adjacency list is ever materialized: edges are computed from two
//     tile types and a direction on demand.
//   - An explicit queue bounds memory by the grid size, not by call depth.
//
// Complexity (N = W×H)
//
//   - Trace:      O(N) time, O(N) memory; each tile dequeued once.
//   - Validate:   O(|Tiles|).
//   - InferStart: O(1).
//
// Usage
//
//	loop, err := looptrace.Trace(grid)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, ErrBrokenAdjacency or a hook error
//	}
//	fmt.Println(loop.HalfLength)
//
//	// With functional options:
//	loop, err := looptrace.Trace(grid,
//		looptrace.WithContext(ctx),
//		looptrace.WithOnEnqueue(func(c pipegrid.Coordinate, depth int) { /* ... */ }),
//		looptrace.WithOnVisit(func(c pipegrid.Coordinate, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrBrokenAdjacency  if two coordinates are not one cardinal step apart.
//   - ErrOpenLoop         from Validate when a member lacks two loop neighbours.
//   - ErrAmbiguousStart   from InferStart when Start does not join exactly two tiles.
//   - Wrapped user-supplied hook errors from OnVisit.
package looptrace
