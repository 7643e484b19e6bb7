// Package explorer is the interaction state machine: it consumes discrete
// input events and animation ticks and produces new viewport states.
//
//   - [Explorer]: owns the viewport, bookmark slots, and animation state
//   - [Event]: a key press, mouse click, or control request
//   - [Action]: what the driver must do after a transition (redraw,
//     start/stop the tick source, quit)
//
// All mutation happens on the event path (Handle) or the tick path (Tick);
// the driver serializes the two. Randomized target selection goes through
// an injectable rand source so tests run with a fixed seed.
package explorer
