package samples

import (
	"errors"

	"github.com/GriffinCanCode/numerics/internal/numerics"
	"github.com/GriffinCanCode/numerics/internal/statistics"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return types.Succeeded(data), nil
}

// Failure creates a failed result tagged with its failure kind
func Failure(kind, message string) (*types.Result, error) {
	return types.Failed(kind, message), nil
}

// fromError maps statistics errors onto failure kinds
func fromError(err error) (*types.Result, error) {
	switch {
	case errors.Is(err, statistics.ErrInsufficientData):
		return Failure(types.KindInsufficient, err.Error())
	case errors.Is(err, numerics.ErrDimensionMismatch):
		return Failure(types.KindDimension, err.Error())
	default:
		return Failure(types.KindInvalidParams, err.Error())
	}
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			switch num := v.(type) {
			case float64:
				numbers = append(numbers, num)
			case int:
				numbers = append(numbers, float64(num))
			case int64:
				numbers = append(numbers, float64(num))
			case float32:
				numbers = append(numbers, float64(num))
			default:
				return nil, false
			}
		}
		return numbers, true
	default:
		return nil, false
	}
}

// describeQuantiles are reported as q25, q75 alongside the median
var describeQuantiles = []struct {
	key string
	p   float64
}{
	{"q25", 0.25},
	{"q75", 0.75},
}

// describe summarizes a sample. Every float goes through types.JSONFloat so
// NaN and ±Inf survive encoding. Variance and standard deviation are
// omitted below two values.
func describe(s *statistics.Sample) (map[string]interface{}, error) {
	mean, err := s.Mean()
	if err != nil {
		return nil, err
	}
	median, err := s.Median()
	if err != nil {
		return nil, err
	}
	lo, err := s.Min()
	if err != nil {
		return nil, err
	}
	hi, err := s.Max()
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"count":  s.Count(),
		"mean":   types.JSONFloat(mean),
		"median": types.JSONFloat(median),
		"min":    types.JSONFloat(lo),
		"max":    types.JSONFloat(hi),
	}
	for _, q := range describeQuantiles {
		v, err := s.Quantile(q.p)
		if err != nil {
			return nil, err
		}
		data[q.key] = types.JSONFloat(v)
	}
	if s.Count() < 2 {
		return data, nil
	}

	variance, err := s.Variance()
	if err != nil {
		return nil, err
	}
	stddev, err := s.StandardDeviation()
	if err != nil {
		return nil, err
	}
	data["variance"] = types.JSONFloat(variance)
	data["stddev"] = types.JSONFloat(stddev)
	return data, nil
}
