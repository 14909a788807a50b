package model

const defaultWindowCap = 3

// Window is a fixed-size ring buffer keeping the most recent values pushed.
// When the buffer is full, new pushes overwrite the oldest entry.
type Window[T any] struct {
	buf  []T
	head int // index of the next write position
	size int // number of valid entries
}

// NewWindow creates a Window with the given capacity.
// If capacity <= 0, defaultWindowCap (3) is used.
func NewWindow[T any](capacity int) *Window[T] {
	if capacity <= 0 {
		capacity = defaultWindowCap
	}
	return &Window[T]{buf: make([]T, capacity)}
}

// Push appends v, overwriting the oldest entry if full.
func (w *Window[T]) Push(v T) {
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
	if w.size < len(w.buf) {
		w.size++
	}
}

// Len returns the number of valid entries.
func (w *Window[T]) Len() int {
	return w.size
}

// Values returns the entries oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, w.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (w.head - w.size + len(w.buf)) % len(w.buf)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(start+i)%len(w.buf)]
	}
	return out
}

// Newest returns the entries newest first.
func (w *Window[T]) Newest() []T {
	vals := w.Values()
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals
}
