// Package encoder runs planned ffmpeg invocations, parses the -progress
// stream into events, and serializes hardware encodes behind a file lock.
package encoder
