// Package ffprobe wraps media metadata probing. It invokes the ffprobe
// binary, decodes its JSON report, and flattens the result into the
// VideoInfo record the rest of the tool consumes.
package ffprobe
