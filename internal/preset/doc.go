// Package preset maps named compression levels to fixed encoding settings.
package preset
