// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Algorithm names one of the interchangeable multiplication strategies.
type Algorithm int

const (
	// Naive is the reference triple loop (MulNaive).
	Naive Algorithm = iota
	// Blocked is the tiled six-loop form (MulBlocked).
	Blocked
	// Reordered is the row-streaming sequential form (MulReordered).
	Reordered
	// Parallel is the fork-join form of Reordered (MulParallel).
	Parallel
)

// algorithmNames are the canonical names, indexed by Algorithm.
var algorithmNames = [...]string{
	Naive:     "naive",
	Blocked:   "blocked",
	Reordered: "reordered",
	Parallel:  "parallel",
}

// algorithmAliases maps every accepted spelling to its Algorithm.
// "iter" and "rayon" are the historical command names.
var algorithmAliases = map[string]Algorithm{
	"naive":     Naive,
	"blocked":   Blocked,
	"reordered": Reordered,
	"iter":      Reordered,
	"parallel":  Parallel,
	"rayon":     Parallel,
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, Blocked, Reordered, Parallel}
}

// ParseAlgorithm resolves a name or alias, case-insensitively and ignoring
// surrounding spaces. Unknown names give ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alg, nil
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// Multiply dispatches to the strategy selected by alg. Options that do not
// concern the chosen strategy are ignored.
func Multiply(alg Algorithm, a, b *Dense, opts ...Option) (*Dense, error) {
	switch alg {
	case Naive:
		return MulNaive(a, b)
	case Blocked:
		return MulBlocked(a, b)
	case Reordered:
		return MulReordered(a, b)
	case Parallel:
		return MulParallel(a, b, opts...)
	default:
		return nil, fmt.Errorf("Multiply(%s): %w", alg, ErrUnknownAlgorithm)
	}
}
