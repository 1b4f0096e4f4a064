// Package graphstate supplies the fixed stabilizer graph-state topologies
// used by the recovery-wedge experiments.
//
// The engine packages (gf2, stabstate, mobius, scenario) accept any
// adjacency; this package is the data-only collaborator that pins down the
// concrete 16-element layout: four bulk elements {3, 7, 11, 15} embedded in
// a twelve-element boundary, with bulk target 15 whose information is
// recoverable exactly from its five-element neighborhood {0, 1, 2, 12, 14}
// and from nothing smaller.
//
// The layout is a verified instance of the state family: subset entropies
// are purity-symmetric, the wedge carries a pure fifth-order interaction of
// 2 bits, and both the outside-wedge control and every proper sub-wedge
// carry zero information about the target.
//
// Scenarios returns the five named experiments evaluated over this
// topology: the recovery wedge, the outside-wedge control, and three
// growth controls on proper sub-wedges of sizes 3 and 4.
package graphstate
