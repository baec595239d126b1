package minimize

// DefaultStartSymbol is the name of the start symbol, if not set otherwise
// with option StartSymbol.
const DefaultStartSymbol = "S"

// Option configures a minimization run.
type Option func(*config)

type config struct {
	start      string
	fixedPoint bool
}

// StartSymbol sets the name of the start symbol (default "S").
func StartSymbol(name string) Option {
	return func(c *config) {
		c.start = name
	}
}

// FixedPoint lets Minimize repeat detecting and merging equivalent
// non-terminals until no more equivalences are found. Without this option,
// a single pass is done.
func FixedPoint(b bool) Option {
	return func(c *config) {
		c.fixedPoint = b
	}
}

func configure(opts []Option) config {
	c := config{start: DefaultStartSymbol}
	for _, opt := range opts {
		opt(&c)
	}
	if c.start == "" {
		c.start = DefaultStartSymbol
	}
	return c
}
