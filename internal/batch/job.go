package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/numerics/internal/types"
)

// Format names a job or report encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Evaluation is one function call. P, N and X are only read by the power
// functions.
type Evaluation struct {
	Name string             `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Fn   string             `json:"fn" yaml:"fn" toml:"fn"`
	Z    types.ComplexValue `json:"z" yaml:"z" toml:"z"`
	P    *types.Float       `json:"p,omitempty" yaml:"p,omitempty" toml:"p,omitempty"`
	N    *int               `json:"n,omitempty" yaml:"n,omitempty" toml:"n,omitempty"`
	X    *types.Float       `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
}

// Job is a named list of evaluations
type Job struct {
	Name        string       `json:"name" yaml:"name" toml:"name"`
	Evaluations []Evaluation `json:"evaluations" yaml:"evaluations" toml:"evaluations"`
}

// FormatFromPath picks the encoding from the file extension, looking
// through a trailing .gz or .zst.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".zst" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported job file extension %q", ext)
	}
}

// LoadFile reads and decodes a job file
func LoadFile(path string) (*Job, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("gzip failed: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	case ".zst":
		zstdReader, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("zstd failed: %w", err)
		}
		defer zstdReader.Close()
		r = zstdReader
	}

	job, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if job.Name == "" {
		job.Name = strings.SplitN(filepath.Base(path), ".", 2)[0]
	}
	return job, nil
}

// Decode reads a job in the given format and checks every entry names a
// known function.
func Decode(r io.Reader, format Format) (*Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	var job Job
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &job)
	case FormatTOML:
		err = toml.Unmarshal(data, &job)
	case FormatJSON:
		err = sonic.Unmarshal(data, &job)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", strings.ToUpper(string(format)), err)
	}

	for i, ev := range job.Evaluations {
		if !IsKnown(ev.Fn) {
			return nil, fmt.Errorf("evaluation %d: unknown function %q", i, ev.Fn)
		}
	}
	return &job, nil
}

// Encode writes v in the given format
func Encode(w io.Writer, v interface{}, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		err = enc.Encode(v)
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("%s encoding error: %w", strings.ToUpper(string(format)), err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if format == FormatJSON {
		_, err = w.Write([]byte("\n"))
	}
	return err
}
