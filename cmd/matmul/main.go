// Command matmul multiplies two random n×n matrices with a chosen strategy.
//
// Usage:
//
//	matmul <algo> <n>
//
// where algo is one of naive, blocked, iter, rayon or display, and n is a
// positive integer (a multiple of 64 for every tiled strategy). display prints
// both operands and their product as tables.
//
// Examples:
//
//	matmul naive 300
//	matmul rayon 1024 --workers 8
//	matmul display 4 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
