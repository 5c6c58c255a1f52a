// Package pda provides a deterministic pushdown-automaton execution engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine kernel:
//   - definition.go: the immutable automaton graph (states, transitions, operations)
//   - executor.go: single-step execution, guard matching, and the accept/reject policy
//   - driver.go: the phase machine (NotStarted → Running → Finished/Stopped) and run loop
//
// # Architecture
//
// The engine commits to the first transition, in declaration order, whose
// guard matches the current input symbol and stack top. It never branches
// and never backtracks; a configuration with no applicable transition is
// resolved by the termination policy (accept by final state, accept by
// empty stack, otherwise reject).
//
// Collaborators observe a run through the Observer interface (events.go)
// and through pda/trace records. The engine never reads presentation state
// back from its observers.
package pda
