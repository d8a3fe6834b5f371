// main is the entry point for the gitbars CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/gitbars/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
