package batch

import (
	"bytes"
	"context"
	stdmath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/types"
)

const yamlJob = `name: sample
evaluations:
  - name: root
    fn: sqrt
    z: {re: -4.0, im: 0.0}
  - fn: powInt
    z: {re: 0.0, im: 1.0}
    n: 2
  - fn: powReal
    x: -1.0
    z: {re: 1.0, im: 1.0}
  - fn: abs
    z: {re: 3.0, im: 4.0}
`

const tomlJob = `name = "sample"

[[evaluations]]
name = "root"
fn = "sqrt"
z = { re = -4.0, im = 0.0 }

[[evaluations]]
fn = "polar"
z = { re = 0.0, im = 2.0 }
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"job.yaml", FormatYAML, false},
		{"job.YML", FormatYAML, false},
		{"job.toml", FormatTOML, false},
		{"job.json", FormatJSON, false},
		{"job.yaml.gz", FormatYAML, false},
		{"job.toml.zst", FormatTOML, false},
		{"job.txt", "", true},
		{"job.gz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	job, err := Decode(strings.NewReader(yamlJob), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "sample", job.Name)
	require.Len(t, job.Evaluations, 4)
	assert.Equal(t, types.Float(-4), job.Evaluations[0].Z.Re)
	require.NotNil(t, job.Evaluations[1].N)
	assert.Equal(t, 2, *job.Evaluations[1].N)

	job, err = Decode(strings.NewReader(tomlJob), FormatTOML)
	require.NoError(t, err)
	require.Len(t, job.Evaluations, 2)
	assert.Equal(t, "polar", job.Evaluations[1].Fn)

	job, err = Decode(strings.NewReader(`{"name":"j","evaluations":[{"fn":"exp","z":{"re":0,"im":0}}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, job.Evaluations, 1)

	job, err = Decode(strings.NewReader(`{"evaluations":[{"fn":"powReal","z":{"re":"-Inf","im":0},"x":"NaN"}]}`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, job.Evaluations, 1)
	assert.True(t, stdmath.IsInf(float64(job.Evaluations[0].Z.Re), -1))
	require.NotNil(t, job.Evaluations[0].X)
	assert.True(t, stdmath.IsNaN(float64(*job.Evaluations[0].X)))

	_, err = Decode(strings.NewReader("evaluations:\n  - fn: asin\n"), FormatYAML)
	assert.ErrorContains(t, err, "unknown function")

	_, err = Decode(strings.NewReader("name = "), FormatTOML)
	assert.Error(t, err)
}

func TestLoadFileCompressed(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(yamlJob))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	job, err := LoadFile(writeFile(t, "a.yaml.gz", gz.Bytes()))
	require.NoError(t, err)
	assert.Len(t, job.Evaluations, 4)

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write([]byte(tomlJob))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	job, err = LoadFile(writeFile(t, "b.toml.zst", zs.Bytes()))
	require.NoError(t, err)
	assert.Len(t, job.Evaluations, 2)
}

func TestLoadFileNamesJobAfterFile(t *testing.T) {
	job, err := LoadFile(writeFile(t, "roots.json", []byte(`{"evaluations":[]}`)))
	require.NoError(t, err)
	assert.Equal(t, "roots", job.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	job, err := Decode(strings.NewReader(yamlJob), FormatYAML)
	require.NoError(t, err)

	report, err := Run(context.Background(), cmath.Default(), job)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report.RunID, "run_"))
	assert.Equal(t, cmath.DefaultSeriesMax, report.SeriesMax)
	require.Len(t, report.Results, 4)
	assert.Equal(t, 1, report.Failed)

	root := report.Results[0]
	assert.Equal(t, "root", root.Name)
	require.NotNil(t, root.Value)
	assert.Equal(t, types.Float(0), root.Value.Re)
	assert.Equal(t, types.Float(2), root.Value.Im)

	sq := report.Results[1].Value
	require.NotNil(t, sq)
	assert.InDelta(t, -1, float64(sq.Re), 1e-15)

	failed := report.Results[2]
	assert.Nil(t, failed.Value)
	assert.Equal(t, types.KindDomain, failed.Kind)
	assert.NotEmpty(t, failed.Error)

	require.NotNil(t, report.Results[3].Real)
	assert.Equal(t, types.Float(5), *report.Results[3].Real)
}

func TestRunRecordsNonconvergence(t *testing.T) {
	job := &Job{Evaluations: []Evaluation{{Fn: "sqrt", Z: types.ComplexValue{Re: 1, Im: 0.2}}}}

	report, err := Run(context.Background(), cmath.New(cmath.Options{SeriesMax: 2}), job)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, types.KindNonconvergence, report.Results[0].Kind)
}

func TestRunMissingArguments(t *testing.T) {
	job := &Job{Evaluations: []Evaluation{
		{Fn: "pow"},
		{Fn: "powInt"},
		{Fn: "powReal"},
	}}

	report, err := Run(context.Background(), nil, job)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Failed)
	for _, res := range report.Results {
		assert.Equal(t, types.KindInvalidParams, res.Kind)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	job := &Job{Evaluations: []Evaluation{{Fn: "exp"}, {Fn: "log"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, cmath.Default(), job)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestEncode(t *testing.T) {
	inf := types.Float(stdmath.Inf(1))
	report := &Report{
		RunID: "run_x",
		Job:   "enc",
		Results: []Result{
			{Fn: "exp", Value: &Value{Re: types.Float(stdmath.NaN()), Im: 1}},
			{Fn: "abs", Real: &inf},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, report, FormatJSON))
	assert.Contains(t, buf.String(), `"NaN"`)
	assert.Contains(t, buf.String(), `"+Inf"`)

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "enc", decoded["job"])

	for _, format := range []Format{FormatYAML, FormatTOML} {
		buf.Reset()
		require.NoError(t, Encode(&buf, report, format), format)
		assert.Contains(t, buf.String(), "run_x", format)
	}

	assert.Error(t, Encode(&buf, report, Format("xml")))
}
