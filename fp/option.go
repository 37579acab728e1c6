package fp

// Option holds a value or nothing
type Option[T any] struct {
	val T
	ok  bool
}

// Some wrap v
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None of T
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome something in option
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone nothing in option
func (o Option[T]) IsNone() bool { return !o.ok }

// Val return held value, zero value for None
func (o Option[T]) Val() T { return o.val }

// ValOr return held value or def
func (o Option[T]) ValOr(def T) T {
	if o.ok {
		return o.val
	}
	return def
}
