// Package viz defines the narrow command interface through which the sorting
// core drives a renderer, together with the sinks bundled with partviz.
//
// The core never draws anything. It creates markers, moves them, relabels
// slots and pauses; every call that takes a duration is a suspension point
// that returns once the renderer reports the animation finished. Sinks:
//
//   - Recorder: records events per lane without pacing (tests, traces).
//   - Paced: sleeps for each requested duration scaled by a speed factor and
//     forwards events to an Observer (CLI and TUI front ends).
//   - Logged: decorator emitting one debug log entry per event.
//   - Discard: drops everything.
package viz
