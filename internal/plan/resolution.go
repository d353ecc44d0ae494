package plan

import (
	"math"
	"strconv"
	"strings"

	"proteus/internal/fault"
)

// ResolutionSpec is a parsed -r value. Width is zero when the user supplied a
// bare height and the width should be derived from the source aspect ratio.
type ResolutionSpec struct {
	Width  int
	Height int
}

// ParseResolution parses a -r flag value: either a bare target height
// ("720") or an explicit WxH ("1280x720"). Empty input yields nil, meaning
// no scaling.
func ParseResolution(raw string) (*ResolutionSpec, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil, nil
	}

	if width, height, found := strings.Cut(raw, "x"); found {
		w, errW := strconv.Atoi(width)
		h, errH := strconv.Atoi(height)
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			return nil, fault.Usagef("invalid resolution %q; use WxH (e.g. 1280x720) or a bare height (e.g. 720)", raw)
		}
		return &ResolutionSpec{Width: w, Height: h}, nil
	}

	h, err := strconv.Atoi(raw)
	if err != nil || h <= 0 {
		return nil, fault.Usagef("invalid resolution %q; use WxH (e.g. 1280x720) or a bare height (e.g. 720)", raw)
	}
	return &ResolutionSpec{Height: h}, nil
}

// ResolveResolution turns a spec into concrete target dimensions for a
// source. A nil spec returns the source dimensions unchanged. Bare heights
// derive the width from the source aspect ratio; both dimensions are forced
// down to even integers because chroma-subsampled encoders reject odd sizes.
// Requests that exceed the source in either dimension are rejected rather
// than clamped.
func ResolveResolution(spec *ResolutionSpec, sourceWidth, sourceHeight int) (int, int, error) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return 0, 0, fault.Wrap(fault.ErrProbe, "resolve resolution",
			"source dimensions unknown", nil)
	}
	if spec == nil {
		return sourceWidth, sourceHeight, nil
	}

	if spec.Width > 0 {
		if spec.Width%2 != 0 || spec.Height%2 != 0 {
			return 0, 0, fault.Usagef("resolution %dx%d has odd dimensions; encoders require even width and height", spec.Width, spec.Height)
		}
		if spec.Width > sourceWidth || spec.Height > sourceHeight {
			return 0, 0, upscaleError(spec.Width, spec.Height, sourceWidth, sourceHeight)
		}
		return spec.Width, spec.Height, nil
	}

	if spec.Height > sourceHeight {
		return 0, 0, upscaleError(0, spec.Height, sourceWidth, sourceHeight)
	}
	aspect := float64(sourceWidth) / float64(sourceHeight)
	width := int(math.Round(float64(spec.Height) * aspect))
	width -= width % 2
	height := spec.Height - spec.Height%2
	if width <= 0 || height <= 0 {
		return 0, 0, fault.Usagef("resolution %d is too small", spec.Height)
	}
	return width, height, nil
}

func upscaleError(width, height, sourceWidth, sourceHeight int) error {
	requested := strconv.Itoa(height)
	if width > 0 {
		requested = strconv.Itoa(width) + "x" + strconv.Itoa(height)
	}
	return fault.Usagef("resolution %s exceeds the source (%dx%d); upscaling is not supported",
		requested, sourceWidth, sourceHeight)
}
