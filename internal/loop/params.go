package loop

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/genricoloni/cliploop/internal/domain"
)

// Navigation parameter keys carried from the selector to the previewer
const (
	ParamStartTime = "startTime"
	ParamEndTime   = "endTime"
)

var (
	// ErrMissingParam marks a parameter that was absent or empty
	ErrMissingParam = errors.New("missing loop parameter")
	// ErrInvalidParam marks a parameter that is not a finite number
	ErrInvalidParam = errors.New("invalid loop parameter")
)

// EncodeParams serializes boundaries into navigation parameters
func EncodeParams(b domain.LoopBoundaries) map[string]string {
	return map[string]string{
		ParamStartTime: strconv.FormatFloat(b.Start, 'f', -1, 64),
		ParamEndTime:   strconv.FormatFloat(b.End, 'f', -1, 64),
	}
}

// ParseParams decodes navigation parameters. Each key that is absent or not a
// finite number falls back independently to its default (0 for start, 10 for
// end). The returned boundaries are always usable; the error lists the keys
// that were defaulted.
func ParseParams(params map[string]string) (domain.LoopBoundaries, error) {
	start, startErr := parseParam(params, ParamStartTime, DefaultStartSeconds)
	end, endErr := parseParam(params, ParamEndTime, DefaultEndSeconds)
	return domain.LoopBoundaries{Start: start, End: end}, errors.Join(startErr, endErr)
}

func parseParam(params map[string]string, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(params[key])
	if raw == "" {
		return fallback, fmt.Errorf("%s: %w", key, ErrMissingParam)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback, fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidParam)
	}
	return v, nil
}
