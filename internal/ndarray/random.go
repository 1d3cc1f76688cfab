package ndarray

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// newSource returns a fresh, weakly seeded PCG source for a single call.
// The seed comes from the runtime's entropy-seeded generator, so there is no
// shared generator whose draw order could couple independent calls.
func newSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // G404: weak randomness is fine for sampling.
}

func newRand() *rand.Rand {
	return rand.New(newSource()) //nolint:gosec // G404: weak randomness is fine for sampling.
}

// Distribution is an immutable parameter record for one of the supported
// sampling distributions.
type Distribution interface {
	fmt.Stringer

	// Validate reports parameter values outside the distribution's domain.
	Validate() error

	// sampler binds the parameters to src and returns a per-element draw.
	sampler(src rand.Source) func() float32
}

// Normal is the normal distribution N(Mean, StdDev²).
type Normal struct {
	Mean, StdDev float64
}

// Uniform is the continuous uniform distribution over [Min, Max).
type Uniform struct {
	Min, Max float64
}

// Exponential is the exponential distribution with rate Lambda.
type Exponential struct {
	Lambda float64
}

// LogNormal is the distribution of exp(X) with X ~ N(Mean, StdDev²).
type LogNormal struct {
	Mean, StdDev float64
}

// Gamma is the gamma distribution with shape parameter Shape and scale Scale.
type Gamma struct {
	Shape, Scale float64
}

// Bernoulli yields 1 with probability P and 0 otherwise.
type Bernoulli struct {
	P float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkPositive(dist, name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: %s must be positive and finite, got %g", dist, name, v)
	}
	return nil
}

func checkFinite(dist, name string, v float64) error {
	if !isFinite(v) {
		return errors.Wrapf(ErrInvalidArgument, "%s: %s must be finite, got %g", dist, name, v)
	}
	return nil
}

// Validate implements Distribution.
func (d Normal) Validate() error {
	if err := checkFinite("Normal", "mean", d.Mean); err != nil {
		return err
	}
	return checkPositive("Normal", "stddev", d.StdDev)
}

func (d Normal) String() string { return fmt.Sprintf("Normal(mean=%g, stddev=%g)", d.Mean, d.StdDev) }

func (d Normal) sampler(src rand.Source) func() float32 {
	n := distuv.Normal{Mu: d.Mean, Sigma: d.StdDev, Src: src}
	return func() float32 { return float32(n.Rand()) }
}

// Validate implements Distribution.
func (d Uniform) Validate() error {
	if !isFinite(d.Min) || !isFinite(d.Max) || d.Min >= d.Max {
		return errors.Wrapf(ErrInvalidArgument, "Uniform: need finite min < max, got [%g, %g)", d.Min, d.Max)
	}
	return nil
}

func (d Uniform) String() string { return fmt.Sprintf("Uniform(min=%g, max=%g)", d.Min, d.Max) }

func (d Uniform) sampler(src rand.Source) func() float32 {
	u := distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}
	// Rounding to float32 may land exactly on Max; keep the interval half-open.
	lo, hi := float32(d.Min), float32(d.Max)
	below := math.Nextafter32(hi, lo)
	return func() float32 {
		v := float32(u.Rand())
		if v >= hi {
			return below
		}
		return v
	}
}

// Validate implements Distribution.
func (d Exponential) Validate() error {
	return checkPositive("Exponential", "lambda", d.Lambda)
}

func (d Exponential) String() string { return fmt.Sprintf("Exponential(lambda=%g)", d.Lambda) }

func (d Exponential) sampler(src rand.Source) func() float32 {
	e := distuv.Exponential{Rate: d.Lambda, Src: src}
	return func() float32 { return float32(e.Rand()) }
}

// Validate implements Distribution.
func (d LogNormal) Validate() error {
	if err := checkFinite("LogNormal", "mean", d.Mean); err != nil {
		return err
	}
	return checkPositive("LogNormal", "stddev", d.StdDev)
}

func (d LogNormal) String() string {
	return fmt.Sprintf("LogNormal(mean=%g, stddev=%g)", d.Mean, d.StdDev)
}

func (d LogNormal) sampler(src rand.Source) func() float32 {
	l := distuv.LogNormal{Mu: d.Mean, Sigma: d.StdDev, Src: src}
	return func() float32 { return float32(l.Rand()) }
}

// Validate implements Distribution.
func (d Gamma) Validate() error {
	if err := checkPositive("Gamma", "shape", d.Shape); err != nil {
		return err
	}
	return checkPositive("Gamma", "scale", d.Scale)
}

func (d Gamma) String() string { return fmt.Sprintf("Gamma(shape=%g, scale=%g)", d.Shape, d.Scale) }

func (d Gamma) sampler(src rand.Source) func() float32 {
	// distuv parameterizes Gamma by rate.
	g := distuv.Gamma{Alpha: d.Shape, Beta: 1 / d.Scale, Src: src}
	return func() float32 { return float32(g.Rand()) }
}

// Validate implements Distribution.
func (d Bernoulli) Validate() error {
	if math.IsNaN(d.P) || d.P < 0 || d.P > 1 {
		return errors.Wrapf(ErrInvalidArgument, "Bernoulli: p must be in [0, 1], got %g", d.P)
	}
	return nil
}

func (d Bernoulli) String() string { return fmt.Sprintf("Bernoulli(p=%g)", d.P) }

func (d Bernoulli) sampler(src rand.Source) func() float32 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	return func() float32 {
		if u.Rand() < d.P {
			return 1
		}
		return 0
	}
}

// Sample fills an array of the given shape with independent draws from dist.
// The order in which elements are drawn is unspecified.
func Sample(shape Shape, dist Distribution) *Array {
	mustValidShape("Sample", shape)
	if err := dist.Validate(); err != nil {
		panic(err)
	}
	a := newArray(shape)
	draw := dist.sampler(newSource())
	for i := range a.data {
		a.data[i] = draw()
	}
	return a
}

// TrySample is the checked version of Sample: invalid shapes or parameters are
// returned as errors wrapping ErrInvalidArgument.
func TrySample(shape Shape, dist Distribution) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "Sample: shape %v: %v", shape, err)
	}
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	return Sample(shape, dist), nil
}

// RandomNormal samples from N(mean, stddev²).
func RandomNormal(shape Shape, mean, stddev float64) *Array {
	return Sample(shape, Normal{Mean: mean, StdDev: stddev})
}

// StandardNormal samples from N(0, 1).
func StandardNormal(shape Shape) *Array {
	return Sample(shape, Normal{Mean: 0, StdDev: 1})
}

// RandomUniform samples uniformly from [min, max).
func RandomUniform(shape Shape, minVal, maxVal float64) *Array {
	return Sample(shape, Uniform{Min: minVal, Max: maxVal})
}

// StandardUniform samples uniformly from [0, 1).
func StandardUniform(shape Shape) *Array {
	return Sample(shape, Uniform{Min: 0, Max: 1})
}

// ExponentialSample samples from the exponential distribution with rate lambda.
func ExponentialSample(shape Shape, lambda float64) *Array {
	return Sample(shape, Exponential{Lambda: lambda})
}

// LogNormalSample samples exp(X) with X ~ N(mean, stddev²).
func LogNormalSample(shape Shape, mean, stddev float64) *Array {
	return Sample(shape, LogNormal{Mean: mean, StdDev: stddev})
}

// GammaSample samples from Gamma(shapeParam, scale).
func GammaSample(shape Shape, shapeParam, scale float64) *Array {
	return Sample(shape, Gamma{Shape: shapeParam, Scale: scale})
}

// BernoulliSample draws a ~ U[0, 1) per element and stores 1 if a < p, else 0.
func BernoulliSample(shape Shape, p float64) *Array {
	return Sample(shape, Bernoulli{P: p})
}
