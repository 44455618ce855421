package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadIndex indicates a decorator referenced a node that does not exist or
// cannot take the requested role (the source cannot be a goal).
var ErrBadIndex = errors.New("builder: bad node index")

// ErrConstructFailed indicates a nil constructor or a composition error.
var ErrConstructFailed = errors.New("builder: construction failed")
