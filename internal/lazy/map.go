package lazy

import "iter"

type mapped[D, R any] struct {
	base Forward[D]
	f    func(D) R
}

func (m *mapped[D, R]) Value() R   { return m.f(m.base.Value()) }
func (m *mapped[D, R]) Next()      { m.base.Next() }
func (m *mapped[D, R]) Done() bool { return m.base.Done() }

type mappedBidi[D, R any] struct {
	mapped[D, R]
	back Bidirectional[D]
}

func (m *mappedBidi[D, R]) Prev() { m.back.Prev() }

type mappedRandom[D, R any] struct {
	mappedBidi[D, R]
	random RandomAccess[D]
}

func (m *mappedRandom[D, R]) Advance(k int) { m.random.Advance(k) }
func (m *mappedRandom[D, R]) Pos() int      { return m.random.Pos() }

// Map returns a cursor yielding f applied to the elements of c.
func Map[D, R any](c Forward[D], f func(D) R) Forward[R] {
	return &mapped[D, R]{base: c, f: f}
}

// MapBidirectional is Map for cursors that can step backward.
func MapBidirectional[D, R any](c Bidirectional[D], f func(D) R) Bidirectional[R] {
	return &mappedBidi[D, R]{mapped: mapped[D, R]{base: c, f: f}, back: c}
}

// MapRandom is Map for random-access cursors.
func MapRandom[D, R any](c RandomAccess[D], f func(D) R) RandomAccess[R] {
	return &mappedRandom[D, R]{
		mappedBidi: mappedBidi[D, R]{mapped: mapped[D, R]{base: c, f: f}, back: c},
		random:     c,
	}
}

// View is a Domain whose elements are f applied to the elements of another
// Domain. Views can wrap other views.
type View[D, R any] struct {
	domain Domain[D]
	f      func(D) R
}

// NewView returns a view of domain through f.
func NewView[D, R any](domain Domain[D], f func(D) R) *View[D, R] {
	return &View[D, R]{domain: domain, f: f}
}

func (v *View[D, R]) Size() int { return v.domain.Size() }

// Start returns a cursor at the first element of the view. When the
// underlying cursor supports more navigation, so does the returned cursor.
func (v *View[D, R]) Start() Forward[R] {
	switch c := v.domain.Start().(type) {
	case RandomAccess[D]:
		return MapRandom(c, v.f)
	case Bidirectional[D]:
		return MapBidirectional(c, v.f)
	default:
		return Map[D, R](c, v.f)
	}
}

// All iterates over the view from the beginning.
func (v *View[D, R]) All() iter.Seq[R] {
	return All(v.Start())
}
