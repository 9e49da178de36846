// Package main provides the ndkit command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/ndkit/ndkit/ndarray"
	"github.com/ndkit/ndkit/numerical"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("ndkit %s\n", version)
		return
	}

	fmt.Printf("ndkit - strided numeric arrays for Go\nVersion: %s\n\n", version)

	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cols, _ := numerical.Sum(a, 0)
	rows, _ := numerical.Sum(a, 1)
	total, _ := numerical.Sum(a, nil)

	fmt.Println("a = [[1 2 3] [4 5 6]]")
	fmt.Printf("sum(a, axis=0) = %v\n", ndarray.Buffer[float64](cols.(*ndarray.NDArray)))
	fmt.Printf("sum(a, axis=1) = %v\n", ndarray.Buffer[float64](rows.(*ndarray.NDArray)))
	fmt.Printf("sum(a)         = %v\n", total)
}
