package fp

// Equal return a function(v T) bool{ return v == elem }
func Equal[T comparable](elem T) func(T) bool {
	return func(v T) bool { return v == elem }
}

// Self return v itself
func Self[T any]() func(T) T {
	return func(v T) T { return v }
}

// IsBlankStr str is blank
func IsBlankStr(s string) bool {
	return s == ""
}
