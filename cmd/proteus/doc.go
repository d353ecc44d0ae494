// Command proteus is a shape-shifting video converter: it wraps ffmpeg and
// ffprobe behind a small set of flags for converting, compressing, probing,
// and time-scaling video files.
package main
