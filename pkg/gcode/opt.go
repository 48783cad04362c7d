package gcode

// Opt is a present-or-absent value. The zero Opt is absent.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr converts a nil-able pointer into an Opt.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

// Present reports whether the value is set.
func (o Opt[T]) Present() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Or returns the value, or fallback when absent.
func (o Opt[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}
