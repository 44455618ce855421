package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for search control.
var (
	// ErrGraphNil is returned by NewAgent when the graph pointer is nil.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownAlgorithm is returned by Start/ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBadLimit is returned when a depth limit is negative; 0 selects the default.
	ErrBadLimit = errors.New("search: depth limit must not be negative")

	// ErrNoGoal is returned by Start when no node is in StateGoal.
	ErrNoGoal = errors.New("search: no goal node")

	// ErrAmbiguousGoal is returned by Start for bidirectional search when more than one goal exists.
	ErrAmbiguousGoal = errors.New("search: bidirectional search requires exactly one goal")

	// ErrAgentBusy is returned by Start while another search is in flight.
	ErrAgentBusy = errors.New("search: agent is already searching")

	// ErrGraphChanged is reported in StepResult.Err when the graph was mutated
	// underneath an active search (a node vanished mid-step).
	ErrGraphChanged = errors.New("search: graph changed during search")

	// ErrAborted is reported in StepResult.Err for searches ended by Abort.
	ErrAborted = errors.New("search: aborted")
)

// Status is the agent state machine: Idle → Searching → {Success | Failed}.
type Status uint8

// Agent states.
const (
	StatusIdle Status = iota
	StatusSearching
	StatusSuccess
	StatusFailed
)

var statusNames = [...]string{"idle", "searching", "success", "failed"}

// String returns the lower-case status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "unknown"
}

// Terminal reports whether s is Success or Failed.
func (s Status) Terminal() bool { return s == StatusSuccess || s == StatusFailed }

// Algorithm names a traversal strategy.
type Algorithm string

// Supported strategies.
const (
	BreadthFirst       Algorithm = "breadth-first"
	DepthFirst         Algorithm = "depth-first"
	DepthLimited       Algorithm = "depth-limited"
	IterativeDeepening Algorithm = "iterative-deepening"
	UniformCost        Algorithm = "uniform-cost"
	Greedy             Algorithm = "greedy"
	AStar              Algorithm = "a-star"
	Bidirectional      Algorithm = "bidirectional"
)

// Default limits applied when Params.Limit is 0.
const (
	DefaultDepthLimit = 3
	DefaultMaxLimit   = 10
)

// AlgorithmInfo describes one entry of the catalogue returned by ListAlgorithms.
type AlgorithmInfo struct {
	Name Algorithm
	// Param names the integer parameter taken through Params.Limit, or "" if none.
	Param string
	// Default is the value used when Params.Limit is 0.
	Default int
	// Weighted reports whether edge weights influence the order of expansion.
	Weighted bool
	// Description is a one-line human summary.
	Description string
}

// catalogue is ordered the way ListAlgorithms presents it.
var catalogue = []AlgorithmInfo{
	{Name: BreadthFirst, Description: "FIFO frontier; shortest path in edges"},
	{Name: DepthFirst, Description: "LIFO frontier; lowest id explored first"},
	{Name: DepthLimited, Param: "limit", Default: DefaultDepthLimit, Description: "depth-first, expanding only above the limit"},
	{Name: IterativeDeepening, Param: "max-limit", Default: DefaultMaxLimit, Description: "depth-limited for limits 1..max"},
	{Name: UniformCost, Weighted: true, Description: "priority = path cost; cheapest path"},
	{Name: Greedy, Weighted: true, Description: "priority = heuristic"},
	{Name: AStar, Weighted: true, Description: "priority = path cost + heuristic"},
	{Name: Bidirectional, Description: "two FIFO frontiers meeting in the middle; uniform step cost"},
}

// aliases maps alternative spellings onto canonical names.
var aliases = map[string]Algorithm{
	"bfs":         BreadthFirst,
	"dfs":         DepthFirst,
	"depth-limit": DepthLimited,
	"dls":         DepthLimited,
	"ids":         IterativeDeepening,
	"ucs":         UniformCost,
	"a*":          AStar,
	"astar":       AStar,
}

// ListAlgorithms returns the catalogue of supported strategies.
func ListAlgorithms() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(catalogue))
	copy(out, catalogue)

	return out
}

// ParseAlgorithm resolves a name or alias (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	for _, info := range catalogue {
		if string(info.Name) == key {
			return info.Name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// lookup returns the catalogue entry for a.
func lookup(a Algorithm) (AlgorithmInfo, bool) {
	for _, info := range catalogue {
		if info.Name == a {
			return info, true
		}
	}

	return AlgorithmInfo{}, false
}

// Params carries per-algorithm parameters.
type Params struct {
	// Limit is the depth limit (depth-limited) or the maximum limit
	// (iterative-deepening). 0 selects the default; ignored elsewhere.
	Limit int
}

// Outcome tags a StepResult.
type Outcome uint8

// Step outcomes.
const (
	Continuing Outcome = iota
	Success
	Failed
)

var outcomeNames = [...]string{"continuing", "success", "failed"}

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return "unknown"
}

// StepResult is what one Step returns.
type StepResult struct {
	Outcome Outcome

	// Visited is the node marked visited by this step, or -1.
	Visited int

	// Record is the terminal record on Success, nil otherwise.
	Record *Record

	// Meeting is the bidirectional meeting point on Success, or -1.
	Meeting int

	// Err explains a Failed outcome that was not an exhausted frontier
	// (ErrAborted, ErrGraphChanged). Nil for ordinary outcomes.
	Err error
}

// Done reports whether the result is terminal.
func (r StepResult) Done() bool { return r.Outcome != Continuing }

func continuing(visited int) StepResult {
	return StepResult{Outcome: Continuing, Visited: visited, Meeting: -1}
}

func succeeded(rec Record, meeting int) StepResult {
	return StepResult{Outcome: Success, Visited: -1, Record: &rec, Meeting: meeting}
}

func failed(err error) StepResult {
	return StepResult{Outcome: Failed, Visited: -1, Meeting: -1, Err: err}
}

// Summary reports a finished search.
type Summary struct {
	ID        uuid.UUID
	Algorithm Algorithm
	Status    Status

	// PathCost is the summed edge weight (edge count for bidirectional).
	PathCost int64
	// PathEdges is the number of edges from source to goal.
	PathEdges int
	// Path lists node ids from source to goal inclusive; nil on failure.
	Path []int
	// Meeting is the bidirectional meeting point, or -1.
	Meeting int
	// Limit is the depth limit in force at the end (depth-limited,
	// iterative-deepening), 0 otherwise.
	Limit int

	NodesVisited int
	Steps        int
	Elapsed      time.Duration
	Err          error
}

// Found reports whether the search reached a goal.
func (s Summary) Found() bool { return s.Status == StatusSuccess }
