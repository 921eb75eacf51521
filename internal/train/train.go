// Package train drives full-batch gradient descent over a linear model.
package train

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/tensor"
)

// ErrInvalidConfig is returned when a training configuration is rejected.
var ErrInvalidConfig = errors.New("invalid config")

// Loss selects the training objective.
type Loss string

// SquaredError is mean squared error, the only supported objective.
const SquaredError Loss = "squared_error"

// Config describes one training run.
type Config struct {
	// FeatureDim is the number of input features, including the constant
	// column. The model learns one weight per feature and no separate bias.
	FeatureDim int

	// LearningRate is the fixed step size. No decay is applied.
	LearningRate float64

	// Loss selects the objective. Zero value means SquaredError.
	Loss Loss

	// Iterations is the number of full-batch update steps.
	Iterations int

	// BatchSize must be zero (use every row) or match the row count of the
	// training data. Mini-batching is not supported.
	BatchSize int

	// Seed drives weight initialization. Same seed, same starting point.
	Seed int64
}

// Validate reports whether the configuration describes a runnable training
// job. All violations are ErrInvalidConfig-classed.
func (c Config) Validate() error {
	if c.FeatureDim < 1 {
		return fmt.Errorf("%w: feature dim %d, want >= 1", ErrInvalidConfig, c.FeatureDim)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate %v, want > 0", ErrInvalidConfig, c.LearningRate)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d, want >= 1", ErrInvalidConfig, c.Iterations)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: batch size %d, want >= 0", ErrInvalidConfig, c.BatchSize)
	}
	if c.Loss != "" && c.Loss != SquaredError {
		return fmt.Errorf("%w: unsupported loss %q", ErrInvalidConfig, c.Loss)
	}
	return nil
}

// Result holds the outcome of a training run.
type Result struct {
	// History is the loss after each update step, one entry per iteration.
	History []float64

	// Weights is the learned coefficient vector, one entry per feature.
	Weights []float64
}

// FinalLoss returns the last recorded loss.
func (r *Result) FinalLoss() float64 {
	if len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1]
}

// Trainer runs gradient descent for a single linear layer on a
// tape-recording backend.
type Trainer[B autodiff.TapeBackend] struct {
	cfg     Config
	backend B
	model   *nn.Linear[B]
	loss    *nn.MSELoss[B]
	opt     *optim.SGD[B]
}

// NewTrainer validates cfg and builds the model and optimizer.
func NewTrainer[B autodiff.TapeBackend](cfg Config, backend B) (*Trainer[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	model := nn.NewLinearWith(cfg.FeatureDim, 1, nn.LinearConfig{Rand: rng}, backend)
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LearningRate})

	return &Trainer[B]{
		cfg:     cfg,
		backend: backend,
		model:   model,
		loss:    nn.NewMSELoss[B](),
		opt:     opt,
	}, nil
}

// Model returns the linear layer being trained.
func (t *Trainer[B]) Model() *nn.Linear[B] {
	return t.model
}

// Fit runs the configured number of full-batch update steps on x and y.
// x must be [n, FeatureDim] and y must be [n, 1].
func (t *Trainer[B]) Fit(x, y *tensor.Tensor[float64, B]) (*Result, error) {
	xs, ys := x.Shape(), y.Shape()
	if len(xs) != 2 || xs[1] != t.cfg.FeatureDim {
		return nil, fmt.Errorf("%w: features shape %v, want [n, %d]", ErrInvalidConfig, xs, t.cfg.FeatureDim)
	}
	if len(ys) != 2 || ys[0] != xs[0] || ys[1] != 1 {
		return nil, fmt.Errorf("%w: targets shape %v, want [%d, 1]", ErrInvalidConfig, ys, xs[0])
	}
	if t.cfg.BatchSize != 0 && t.cfg.BatchSize != xs[0] {
		return nil, fmt.Errorf("%w: batch size %d, want 0 or the full %d rows", ErrInvalidConfig, t.cfg.BatchSize, xs[0])
	}

	tape := t.backend.Tape()
	history := make([]float64, 0, t.cfg.Iterations)

	for i := 0; i < t.cfg.Iterations; i++ {
		tape.Clear()
		tape.StartRecording()

		pred := t.model.Forward(x)
		loss := t.loss.Forward(pred, y)

		grads := autodiff.Backward(loss, t.backend)
		t.opt.Step(grads)
		t.opt.ZeroGrad()

		history = append(history, loss.Item())
	}
	tape.Clear()

	return &Result{
		History: history,
		Weights: t.Weights(),
	}, nil
}

// FitData converts d to tensors on the trainer's backend and runs Fit.
func (t *Trainer[B]) FitData(d *dataset.LinearData) (*Result, error) {
	x, y, err := dataset.Tensors(d, t.backend)
	if err != nil {
		return nil, err
	}
	return t.Fit(x, y)
}

// Weights returns a copy of the current coefficient vector.
func (t *Trainer[B]) Weights() []float64 {
	data := t.model.Weight().Tensor().Data()
	out := make([]float64, len(data))
	copy(out, data)
	return out
}
