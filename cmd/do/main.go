// Command do runs the tasks listed in a config file, rendering each one as
// a logged activity with colored start/stop lines on the console.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
