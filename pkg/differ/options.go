package differ

// Option is a functional option for configuring Differ.
type Option func(*differ)

// WithClassifier sets the leaf classification strategy.
func WithClassifier(c Classifier) Option {
	return func(d *differ) {
		if c != nil {
			d.classifier = c
		}
	}
}

// WithIdenticalAllowed selects translation classification, treating values
// identical to base as translated when allowed is true.
func WithIdenticalAllowed(allowed bool) Option {
	return func(d *differ) {
		d.classifier = Translation{IdenticalAllowed: allowed}
	}
}

// WithStructural selects presence-only classification.
func WithStructural() Option {
	return func(d *differ) {
		d.classifier = Structural{}
	}
}
