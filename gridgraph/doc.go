// Package gridgraph turns a text maze into a search-ready core.Graph.
//
// What:
//
//   - A maze is a rectangle of runes: '#' wall, '.' floor, '1'..'9' terrain
//     with that entry cost, 'S' the single source, 'G' a goal. Floor, source
//     and goal cells cost 1 to enter.
//   - ToCoreGraph emits a directed graph: every walkable cell is a node and
//     each move u→v weighs the entry cost of v. Positions follow the grid.
//   - With GridOptions.Heuristic the nodes carry the step distance to the
//     nearest goal (Manhattan for Conn4, Chebyshev for Conn8). Every move
//     costs at least 1, so the heuristic never overestimates.
//   - ConnectedComponents and Reachable answer "is there any path" without
//     running a search; Breach finds the fewest walls whose removal connects
//     the source to a goal.
//
// Complexity:
//
//   - ParseMaze, ToCoreGraph: O(W×H×d), d = 4 or 8.
//   - ConnectedComponents, Breach: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: malformed maze text.
//   - ErrSource: zero or several 'S' cells.
//   - ErrNoGoal: no 'G' cell.
package gridgraph
