// Command valves solves valve-pressure puzzle files.
//
// Usage:
//
//	valves solve [flags] FILE...
//	valves version
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
