// Command posetctl runs poset command scripts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "posetctl:", err)
		os.Exit(1)
	}
}
