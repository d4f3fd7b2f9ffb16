// Package lsg models the Loop Structure Graph: the forest of SimpleLoops a
// recognition engine (tarjan or fwbw) populates from a cfg.MaoCFG.
//
// A LoopStructureGraph owns every SimpleLoop it creates. CreateNewLoop
// allocates a loop without publishing it; AddLoop publishes it for
// enumeration and for CalculateNestingLevel. This two-step handshake
// matches the source algorithms, which build up a loop's membership before
// deciding whether it is worth registering.
package lsg
