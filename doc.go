// Package matmul is a small laboratory for dense square-matrix
// multiplication: one n×n float64 store, four ways to multiply it, and a
// command that times them.
//
// 🚀 What is matmul?
//
//	A pure-Go kernel collection where every strategy returns the same bits:
//		• matrix: Dense store, Zero/Identity/Random generators, table output
//		• matrix: MulNaive, MulBlocked, MulReordered, MulParallel + Multiply
//		• workerpool: persistent fork-join pool behind MulParallel
//		• cmd/matmul: `matmul <algo> <n>` timing and display driver
//
// ✨ Why bother?
//
//   - Cache behaviour is the only variable: naive, tiled and row-streaming
//     loops differ in memory order, never in arithmetic order
//   - Reproducible: seeded operands and bit-identical products across
//     strategies and worker counts
//   - Shareable pool: concurrent MulParallel calls reuse one set of goroutines
//
// Layout:
//
//	matrix/     — Dense, generators, the four multipliers, Algorithm registry
//	workerpool/ — ParallelFor / ParallelForBatched over a fixed worker set
//	cmd/matmul/ — cobra CLI (naive, blocked, iter, rayon, display)
//
// Quick start:
//
//	go run ./cmd/matmul display 3 --seed 1
//	go run ./cmd/matmul rayon 1024 --workers 8
package matmul
