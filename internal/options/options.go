package options

// Option configures a target of type T, typically a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build applies defaults followed by opts to target and returns it.
// User options always win over defaults since they are applied last.
func Build[T any](target T, defaults []Option[T], opts ...Option[T]) (T, error) {
	if err := Apply(target, defaults...); err != nil {
		return target, err
	}
	if err := Apply(target, opts...); err != nil {
		return target, err
	}

	return target, nil
}
