// Package format reads and writes SWE problem instances. Two file shapes
// are supported: the native YAML format (ReadNative/WriteNative) and the
// line-oriented 1-in-3-SAT clause format (ReadOIT), mirroring the two
// readers of the system this package was translated from.
package format
