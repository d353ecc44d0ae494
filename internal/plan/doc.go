// Package plan turns user-facing options into concrete ffmpeg invocations:
// resolution resolution, playback-rate math, output path derivation, and the
// final argument list for convert, compress, and speed operations. Every
// builder here is pure; side effects start only when the encoder runner
// executes the result.
package plan
