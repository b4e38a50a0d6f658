// Package matrix implements a dense square float64 matrix and four
// interchangeable multiplication strategies that produce bit-identical
// products.
//
// 🚀 What's inside?
//
//	Dense           — n×n row-major store, safe At/Set, exclusive buffer ownership
//	Zero/Identity   — neutral-element constructors
//	Random          — U[-1,1) fill from an explicit *rand.Rand (WithRand/WithSeed)
//	MulNaive        — reference triple loop; defines the summation order
//	MulBlocked      — six-loop tiling by TileSize (64)
//	MulReordered    — row-streaming loop over contiguous rows of B
//	MulParallel     — MulReordered rows split across a workerpool.Pool
//
// ✨ The contract:
//
//	For every pair (A, B) with n % TileSize == 0:
//
//	  MulNaive(A,B) == MulBlocked(A,B) == MulReordered(A,B) == MulParallel(A,B)
//
//	exactly, element for element. Floating-point addition is not associative,
//	so each strategy adds the terms of every cell in the same ascending-k order
//	rather than settling for approximate equality.
//
// ⚙️ Usage:
//
//	a, _ := matrix.Random(256, matrix.WithSeed(7))
//	b, _ := matrix.Random(256, matrix.WithSeed(8))
//	c, err := matrix.MulParallel(a, b)
//	if errors.Is(err, matrix.ErrUnalignedSize) {
//		// fall back to MulNaive for n not a multiple of 64
//	}
//
// Errors are package sentinels (see errors.go) wrapped with operation
// context; match them with errors.Is.
package matrix
