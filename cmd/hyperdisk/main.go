// Command hyperdisk replays recorded editing sessions of the hyperbolic
// disk editor, renders them to PNG and inspects the geometry engine.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
