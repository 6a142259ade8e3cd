// Package log provides the logging abstraction used by recipebox.
//
// The catalog never writes to stdout or stderr directly. Components accept
// a [Logger] and report fail-soft storage problems through it. A zerolog
// adapter is provided for applications, and a no-op logger is the library
// default:
//
//	logger := log.NewZerologAdapter(zerolog.InfoLevel)
//	cat, err := recipebox.New(cfg, recipebox.WithLogger(logger))
//
// Any other logging library can be plugged in by implementing the four
// level methods of [Logger].
package log
