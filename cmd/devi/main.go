// Package main provides the DeVi CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dasupradyumna/DeVi/core"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("DeVi %s\n", version)
			return
		case "demo":
			if err := demo(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("DeVi - strided n-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Slice an array and write through the view")
}

// demo slices a (5, 8, 6) array and shows that writes through the view land
// in the array.
func demo(w io.Writer) error {
	a, err := core.Full[int32](core.MustShape(5, 8, 6), 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "array: %v\n", a)

	v, err := a.Slice(core.Slice{Begin: 0, End: 5, Step: 2}, core.Span(3, 6), core.At(3))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "view:  %v strides %v\n", v, v.Strides())

	if err := v.Set(2, 0, 0); err != nil {
		return err
	}
	if err := v.Set(3, 2, 1); err != nil {
		return err
	}

	for _, c := range [][]int{{0, 3, 3}, {4, 4, 3}} {
		x, err := a.Get(c...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "a%v = %d\n", c, x)
	}
	return nil
}
