// Package progress carries run progress from the sorting core to whatever
// displays it. A run reports a normalized value in [0, 1] through a
// ProgressCallback; a ProgressSubject fans that value out to observers such
// as a channel feeding the CLI spinner or a structured logger.
package progress
