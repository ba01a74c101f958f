// Package logging is the structured logging facade of partviz. Components
// log through the Logger interface; the zerolog adapter writes JSON for the
// metrics server and a console format for --verbose and --trace.
package logging
