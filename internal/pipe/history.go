package pipe

// History keeps the current value and the one before it.
type History[T any] struct {
	cur     T
	prev    T
	hasPrev bool
}

// NewHistory starts a history with no previous value.
func NewHistory[T any](v T) History[T] {
	return History[T]{cur: v}
}

// Update pushes v, moving the current value to previous.
func (h *History[T]) Update(v T) {
	h.prev = h.cur
	h.hasPrev = true
	h.cur = v
}

// Current returns the latest value.
func (h History[T]) Current() T {
	return h.cur
}

// Previous returns the value before the latest one, if any.
func (h History[T]) Previous() (T, bool) {
	return h.prev, h.hasPrev
}
