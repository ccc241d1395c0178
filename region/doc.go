// Package region classifies every grid tile that is not on the traced
// loop as inside or outside of it.
//
// What:
//
//   - Classify builds a filtered view of the grid in which every tile off
//     the loop is forced to Void: dead pipes never act as boundary.
//   - For each Void tile the view is scanned leftward to the row start.
//     '-' is transparent, '|' is one crossing, and corner tiles are
//     collected in scan order; each consecutive pair (J, F) or (7, L)
//     adds one crossing. Odd crossings mean inside.
//   - The start tile is either replaced by its inferred shape
//     (InferStart policy, default) or left as 'S' (RawStart), in which
//     case it is an unmatched corner that never completes a pair.
//
// Why:
//
//   - This is even-odd ray casting specialised to a rectilinear boundary:
//     a horizontal run whose end corners turn to opposite vertical sides
//     crosses the ray once; a run that returns to the same side does not.
//
// Complexity:
//
//   - Classify: O(W²×H) worst case (one leftward scan per off-loop tile),
//     O(W×H) memory for the view.
//   - Label, View, Crossings: O(1), O(1), O(W).
//
// Errors:
//
//   - ErrGridNil, ErrLoopNil for nil inputs.
//   - ErrOptionViolation for an unknown StartPolicy.
//   - looptrace.ErrAmbiguousStart when InferStart cannot recover the start shape.
package region
