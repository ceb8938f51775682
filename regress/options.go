package regress

// Option is a function that configures a Model.
type Option func(*Model)

// WithX sets the initial x vector.
func WithX(x []float64) Option {
	return func(m *Model) {
		m.x = x
	}
}

// WithY sets the initial y vector.
func WithY(y []float64) Option {
	return func(m *Model) {
		m.y = y
	}
}

// WithWeights sets the initial weight vector. When absent, every
// observation carries weight 1.
func WithWeights(w []float64) Option {
	return func(m *Model) {
		m.weights = w
	}
}
