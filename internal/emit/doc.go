// Package emit turns the transformed corpus into output artifacts.
//
// Emitters are registered in an explicit order. The runner aggregates the
// static resources of every component the emitters declare before any of
// them runs, then executes them one after another and writes what they
// return. A failing emitter never stops the emitters after it.
package emit
