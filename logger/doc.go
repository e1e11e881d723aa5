// Package logger provides a leveled logger that writes each message to the
// console and to a log file.
//
// # Line Format
//
// Every message becomes a single line:
//
//	[14:05:09 INFO  Core] Started
//
// The time is local 24-hour HH:mm:ss, the level label is uppercase and padded
// to the longest level name, and the source is the name the Logger was
// created with.
//
// # Sinks
//
// The file sink receives every line. The console receives a line unless
// console output is disabled, or the line is Trace and trace output is
// hidden (the default). Console lines are colored by level when the console
// supports it; support is probed once per process.
//
// # Usage
//
//	f, err := logfile.Open("app.log")
//	if err != nil { ... }
//	log, err := logger.New("Core", f, logger.WithConfig(logger.ConfigFromEnv()))
//	if err != nil { ... }
//	log.Log("Started", logger.Info)
//
// Fatal errors are shown white on red:
//
//	log.LogFatal("disk full")
//
// # Concurrency
//
// Logger methods may be called from several goroutines. Console color
// changes are serialized by the Console. Ordering of file lines between
// goroutines is up to the FileSink.
package logger
