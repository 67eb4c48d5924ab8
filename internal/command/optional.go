package command

// Optional makes "field not supplied" a distinct, type-checked state instead
// of a nil sentinel. The zero value is unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a supplied value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// IsSet reports whether a value was supplied.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrElse returns the value if supplied, else fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
