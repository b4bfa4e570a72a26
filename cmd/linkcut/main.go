// Command linkcut runs link-cut forest scripts and stress checks.
//
// Usage:
//
//	linkcut run [file]                 execute a script (stdin when no file or "-")
//	linkcut stress --n 20 --ops 10000  cross-check against a rollback union-find
//
// Every flag can also be set through LINKCUT_<FLAG>, e.g. LINKCUT_UNCHECKED=true.
package main

import "github.com/katalvlaran/linkcut/internal/cli"

func main() {
	cli.Execute()
}
