// Package formatter turns log records into bytes.
//
// The JSONFormatter produces newline-delimited JSON objects with the
// fixed keys asctime, name, levelname and message; Verbose mode adds
// pathname, lineno and funcName. This is the wire format of the file
// sinks (logs/app.log, logs/errors.log, logs/debug.log) and of the
// console stream.
//
// Formatters may optionally implement WriterFormatter and
// BufferFormatter to let handlers skip intermediate allocations; both
// built-in formatters do.
package formatter
