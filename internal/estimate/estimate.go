package estimate

import (
	"proteus/internal/media/ffprobe"
	"proteus/internal/preset"
)

// Method tags how an estimate was produced so the renderer can annotate
// heuristic guesses differently from measured samples.
type Method string

const (
	// MethodHeuristic marks a prediction from the CRF ratio table.
	MethodHeuristic Method = "heuristic"
	// MethodSampled marks an extrapolation from a real sample encode.
	MethodSampled Method = "sampled"
)

// Estimate is a predicted output size for one encoding setting.
type Estimate struct {
	Label  string
	Level  preset.Level
	CRF    int
	Bytes  int64
	Method Method
}

// Empirical output/input size ratios per CRF for H.264 encodes. Content
// dependent, so these are order-of-magnitude guides, not promises.
var crfRatios = map[int]float64{
	18: 0.65,
	19: 0.58,
	20: 0.50,
	21: 0.45,
	22: 0.40,
	23: 0.35,
	24: 0.30,
	25: 0.27,
	26: 0.24,
	27: 0.21,
	28: 0.18,
	29: 0.16,
	30: 0.14,
	31: 0.12,
	32: 0.11,
	33: 0.10,
	34: 0.09,
	35: 0.08,
}

// Heuristic predicts the output size for a CRF without encoding anything.
// Downscaling shrinks the pixel count quadratically, so a target height
// below the source scales the prediction by (target/source)^2.
func Heuristic(info ffprobe.VideoInfo, crf int, targetHeight int) Estimate {
	ratio := ratioFor(crf)

	scale := 1.0
	if targetHeight > 0 && info.Height > 0 && targetHeight < info.Height {
		s := float64(targetHeight) / float64(info.Height)
		scale = s * s
	}

	return Estimate{
		CRF:    crf,
		Bytes:  int64(float64(info.SizeBytes) * ratio * scale),
		Method: MethodHeuristic,
	}
}

// HeuristicLevel predicts the output size for a compression level.
func HeuristicLevel(info ffprobe.VideoInfo, level preset.Level, targetHeight int) (Estimate, error) {
	settings, err := preset.Resolve(level)
	if err != nil {
		return Estimate{}, err
	}
	est := Heuristic(info, settings.CRF, targetHeight)
	est.Level = level
	return est, nil
}

func ratioFor(crf int) float64 {
	if crf < 18 {
		crf = 18
	}
	if crf > 35 {
		crf = 35
	}
	ratio, ok := crfRatios[crf]
	if !ok {
		return 0.35
	}
	return ratio
}
