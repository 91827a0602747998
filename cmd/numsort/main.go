// Command numsort sorts values in natural number order: "2" before "10",
// numbers before words.
//
// Usage:
//
//	numsort < names.txt
//	numsort --yaml --by Month --by Day < rows.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
