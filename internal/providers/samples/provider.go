package samples

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/GriffinCanCode/numerics/internal/statistics"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// Provider implements sample statistics
type Provider struct{}

// NewProvider creates a samples provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "samples",
		Name:        "Samples Service",
		Description: "Descriptive statistics, correlation and covariance over numeric samples and CSV data",
		Category:    types.CategoryStatistics,
		Capabilities: []string{
			"statistics",
			"correlation",
			"covariance",
			"csv",
		},
		Tools: []types.Tool{
			{
				ID:          "samples.describe",
				Name:        "Describe",
				Description: "Count, mean, median, quartiles, min, max, variance and standard deviation",
				Parameters: []types.Parameter{
					{Name: "values", Type: "array", Description: "Numbers", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "samples.loadCSV",
				Name:        "Load CSV",
				Description: "Describe one CSV column, or the means and covariance matrix of several",
				Parameters: []types.Parameter{
					{Name: "csv", Type: "string", Description: "CSV text", Required: true},
					{Name: "header", Type: "boolean", Description: "First row holds column names", Required: false},
					{Name: "column", Type: "string|integer", Description: "Column name or index", Required: false},
					{Name: "columns", Type: "array", Description: "Column names or indices for a multivariate load", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "samples.correlate",
				Name:        "Correlate",
				Description: "Pearson correlation and covariance of paired values",
				Parameters: []types.Parameter{
					{Name: "x", Type: "array", Description: "First variable", Required: true},
					{Name: "y", Type: "array", Description: "Second variable, same length as x", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes to the matching tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "samples.describe":
		return p.describe(params)
	case "samples.loadCSV":
		return p.loadCSV(params)
	case "samples.correlate":
		return p.correlate(params)
	default:
		return Failure(types.KindUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) describe(params map[string]interface{}) (*types.Result, error) {
	values, ok := GetNumbers(params, "values")
	if !ok {
		return Failure(types.KindInvalidParams, "values must be an array of numbers")
	}
	data, err := describe(statistics.NewSample(values...))
	if err != nil {
		return fromError(err)
	}
	return Success(data)
}

func (p *Provider) correlate(params map[string]interface{}) (*types.Result, error) {
	xs, ok := GetNumbers(params, "x")
	if !ok {
		return Failure(types.KindInvalidParams, "x must be an array of numbers")
	}
	ys, ok := GetNumbers(params, "y")
	if !ok {
		return Failure(types.KindInvalidParams, "y must be an array of numbers")
	}
	if len(xs) != len(ys) {
		return Failure(types.KindDimension, fmt.Sprintf("x has %d values, y has %d", len(xs), len(ys)))
	}

	b := statistics.NewBivariateSample()
	for i := range xs {
		if err := b.Add(xs[i], ys[i]); err != nil {
			return fromError(err)
		}
	}
	b.Freeze()

	cov, err := b.Covariance()
	if err != nil {
		return fromError(err)
	}
	corr, err := b.Correlation()
	if err != nil {
		return fromError(err)
	}
	return Success(map[string]interface{}{
		"count":       b.Count(),
		"covariance":  types.JSONFloat(cov),
		"correlation": types.JSONFloat(corr),
	})
}

func (p *Provider) loadCSV(params map[string]interface{}) (*types.Result, error) {
	text, ok := params["csv"].(string)
	if !ok {
		return Failure(types.KindInvalidParams, "csv must be a string")
	}
	header, _ := params["header"].(bool)

	reader, err := statistics.NewCSVReader(strings.NewReader(text), header)
	if err != nil {
		return fromError(err)
	}

	if raw, ok := params["columns"].([]interface{}); ok {
		cols := make([]int, 0, len(raw))
		for _, c := range raw {
			idx, err := resolveColumn(reader, c)
			if err != nil {
				return fromError(err)
			}
			cols = append(cols, idx)
		}
		return loadMultivariate(reader, cols)
	}

	var col int
	if c, ok := params["column"]; ok {
		if col, err = resolveColumn(reader, c); err != nil {
			return fromError(err)
		}
	}

	s := statistics.NewSample()
	if err := s.Load(reader, col); err != nil {
		return fromError(err)
	}
	s.Freeze()

	data, err := describe(s)
	if err != nil {
		return fromError(err)
	}
	data["column"] = col
	return Success(data)
}

func loadMultivariate(reader *statistics.CSVReader, cols []int) (*types.Result, error) {
	if len(cols) == 0 {
		return Failure(types.KindInvalidParams, "columns must not be empty")
	}

	m := statistics.NewMultivariateSample(len(cols))
	if err := m.Load(reader, cols...); err != nil {
		return fromError(err)
	}
	m.Freeze()

	means, err := m.Means()
	if err != nil {
		return fromError(err)
	}
	data := map[string]interface{}{
		"count":   m.Count(),
		"columns": cols,
		"means":   types.JSONFloats(means),
	}
	// a single row has a mean but no covariance
	if m.Count() >= 2 {
		cov, err := m.CovarianceMatrix()
		if err != nil {
			return fromError(err)
		}
		data["covariance"] = symRows(cov)
	}
	return Success(data)
}

// resolveColumn accepts a column index or, with a header, a column name
func resolveColumn(reader *statistics.CSVReader, c interface{}) (int, error) {
	switch v := c.(type) {
	case float64:
		if v < 0 || v != float64(int(v)) {
			return 0, fmt.Errorf("invalid column index %v", v)
		}
		return int(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("invalid column index %d", v)
		}
		return v, nil
	case string:
		idx, ok := reader.ColumnIndex(v)
		if !ok {
			return 0, fmt.Errorf("unknown column %q", v)
		}
		return idx, nil
	default:
		return 0, fmt.Errorf("invalid column %v", c)
	}
}

func symRows(s *mat.SymDense) [][]interface{} {
	n := s.SymmetricDim()
	rows := make([][]interface{}, n)
	for i := range rows {
		rows[i] = make([]interface{}, n)
		for j := range rows[i] {
			rows[i][j] = types.JSONFloat(s.At(i, j))
		}
	}
	return rows
}
