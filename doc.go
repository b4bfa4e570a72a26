// Package linkcut is a small library for dynamic forests: trees that gain and
// lose edges online while answering connectivity queries.
//
// What is inside:
//
//	lct/            — the link-cut forest: Link, Cut, Connected, MakeRoot, Access,
//	                  FindRoot, HasEdge, plus a mutex-guarded SyncForest
//	dsu/            — union-find with rollback (offline connectivity, test oracle)
//	cmd/linkcut/    — CLI: run link/cut scripts, stress-check against dsu
//
// Quick ASCII example:
//
//	Link(0,1) Link(1,2) Link(2,3)      0───1───2───3     Connected(0,3) = true
//	Cut(1,2)                           0───1   2───3     Connected(0,3) = false
//
// All operations are amortized O(log n). Vertices are the integers 0..n-1
// fixed at construction; the structure never allocates after New.
//
//	go get github.com/katalvlaran/linkcut/lct
package linkcut
