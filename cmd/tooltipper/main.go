// Command tooltipper loads an HTML page, wires its tooltips and lets you
// inspect, snapshot or interactively hover them.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
