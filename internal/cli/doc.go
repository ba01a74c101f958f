// Package cli renders partviz runs in a terminal: the execution banner, a
// spinner with a progress bar while the runs are paced, the comparison
// table and the sorted output.
//
// Display* helpers write to an [io.Writer], Format* helpers only build
// strings, and [WriteReportToFile] is the one function touching the
// filesystem.
package cli
