// Package modem binds the external FSK modem engine that turns payload
// bytes into audio waveforms and back.
//
// The Engine interface mirrors the engine's C surface; Modem layers the
// calling conventions the engine requires on top of it: the two-phase
// size-query-then-write encode, and the decode retry loop that doubles its
// output buffer on the engine's buffer-too-small signal up to a fixed
// ceiling. Substitute engines (including test fakes) get both behaviors
// for free by implementing Engine.
package modem
