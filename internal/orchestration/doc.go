// Package orchestration runs one quicksort per partition scheme over copies of
// the same input and compares their outputs. Runs are either free-running
// goroutines or cooperatively interleaved in lockstep. Presentation stays out
// of this package behind the ProgressReporter and ResultPresenter interfaces.
package orchestration
