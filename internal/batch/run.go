package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GriffinCanCode/numerics/internal/numerics"
	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/shared/id"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// Value is a complex result
type Value struct {
	Re types.Float `json:"re" yaml:"re" toml:"re"`
	Im types.Float `json:"im" yaml:"im" toml:"im"`
}

// Result is the outcome of one evaluation. Exactly one of Value, Real and
// Error is set; Polar results fill Real (magnitude) and Phase.
type Result struct {
	Name  string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Fn    string       `json:"fn" yaml:"fn" toml:"fn"`
	Value *Value       `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Real  *types.Float `json:"real,omitempty" yaml:"real,omitempty" toml:"real,omitempty"`
	Phase *types.Float `json:"phase,omitempty" yaml:"phase,omitempty" toml:"phase,omitempty"`
	Error string       `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Kind  string       `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
}

// Report collects the results of a run
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id" toml:"run_id"`
	Job       string        `json:"job" yaml:"job" toml:"job"`
	SeriesMax int           `json:"series_max" yaml:"series_max" toml:"series_max"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at" toml:"started_at"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns" toml:"duration_ns"`
	Failed    int           `json:"failed" yaml:"failed" toml:"failed"`
	Results   []Result      `json:"results" yaml:"results" toml:"results"`
}

type evaluator func(e *cmath.Engine, ev Evaluation) (Result, error)

func complexFn(f func(complexnum.Complex) complexnum.Complex) evaluator {
	return func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		return complexResult(f(toComplex(ev))), nil
	}
}

func realFn(f func(complexnum.Complex) float64) evaluator {
	return func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		x := types.Float(f(toComplex(ev)))
		return Result{Real: &x}, nil
	}
}

var evaluators = map[string]evaluator{
	"abs":  realFn(cmath.Abs),
	"arg":  realFn(cmath.Arg),
	"exp":  complexFn(cmath.Exp),
	"log":  complexFn(cmath.Log),
	"sqr":  complexFn(cmath.Sqr),
	"sin":  complexFn(cmath.Sin),
	"cos":  complexFn(cmath.Cos),
	"tan":  complexFn(cmath.Tan),
	"sinh": complexFn(cmath.Sinh),
	"cosh": complexFn(cmath.Cosh),
	"tanh": complexFn(cmath.Tanh),
	"polar": func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		r, theta := cmath.Polar(toComplex(ev))
		rf, tf := types.Float(r), types.Float(theta)
		return Result{Real: &rf, Phase: &tf}, nil
	},
	"sqrt": func(e *cmath.Engine, ev Evaluation) (Result, error) {
		w, err := e.Sqrt(toComplex(ev))
		if err != nil {
			return Result{}, err
		}
		return complexResult(w), nil
	},
	"pow": func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		if ev.P == nil {
			return Result{}, errors.New("pow requires p")
		}
		return complexResult(cmath.Pow(toComplex(ev), float64(*ev.P))), nil
	},
	"powReal": func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		if ev.X == nil {
			return Result{}, errors.New("powReal requires x")
		}
		w, err := cmath.RealPow(float64(*ev.X), toComplex(ev))
		if err != nil {
			return Result{}, err
		}
		return complexResult(w), nil
	},
	"powInt": func(_ *cmath.Engine, ev Evaluation) (Result, error) {
		if ev.N == nil {
			return Result{}, errors.New("powInt requires n")
		}
		return complexResult(cmath.PowInt(toComplex(ev), *ev.N)), nil
	},
}

// IsKnown reports whether fn names an evaluable function
func IsKnown(fn string) bool {
	_, ok := evaluators[fn]
	return ok
}

// Evaluate runs a single evaluation. Numerical failures come back as an
// error; the returned Result carries only the value.
func Evaluate(engine *cmath.Engine, ev Evaluation) (Result, error) {
	f, ok := evaluators[ev.Fn]
	if !ok {
		return Result{}, fmt.Errorf("unknown function %q", ev.Fn)
	}
	res, err := f(engine, ev)
	res.Name = ev.Name
	res.Fn = ev.Fn
	return res, err
}

// Run evaluates the job in order. When ctx is cancelled Run stops before
// the next entry and returns the partial report with ctx's error.
func Run(ctx context.Context, engine *cmath.Engine, job *Job) (*Report, error) {
	if engine == nil {
		engine = cmath.Default()
	}

	report := &Report{
		RunID:     id.NewRunID().String(),
		Job:       job.Name,
		SeriesMax: engine.SeriesMax(),
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, 0, len(job.Evaluations)),
	}
	defer func() {
		report.Duration = time.Since(report.StartedAt)
	}()

	for _, ev := range job.Evaluations {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := Evaluate(engine, ev)
		if err != nil {
			res = Result{Name: ev.Name, Fn: ev.Fn, Error: err.Error(), Kind: kindOf(err)}
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, numerics.ErrNonconvergence):
		return types.KindNonconvergence
	case errors.Is(err, numerics.ErrDomain):
		return types.KindDomain
	default:
		return types.KindInvalidParams
	}
}

func toComplex(ev Evaluation) complexnum.Complex {
	return complexnum.New(float64(ev.Z.Re), float64(ev.Z.Im))
}

func complexResult(z complexnum.Complex) Result {
	return Result{Value: &Value{Re: types.Float(z.Re()), Im: types.Float(z.Im())}}
}
