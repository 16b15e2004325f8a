package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/lazy"
)

var _ = Describe("Axis", func() {
	It("rejects fewer than two points", func() {
		_, err := grid.NewAxis(1, 0, 1)
		Expect(err).To(MatchError(grid.ErrInvalidGrid))

		_, err = grid.NewAxis(0, 0, 1)
		Expect(err).To(MatchError(grid.ErrInvalidGrid))
	})

	It("samples evenly including both endpoints", func() {
		a := grid.MustAxis(3, 0, 10)
		Expect(lazy.Collect(a.Start())).To(Equal([]float64{0, 5, 10}))
		Expect(a.Size()).To(Equal(3))
		Expect(a.Front()).To(Equal(0.0))
		Expect(a.Back()).To(BeNumerically("~", 10, 1e-12))
	})

	DescribeTable("front and back match the interval",
		func(n int, lo, hi float64) {
			a := grid.MustAxis(n, lo, hi)
			Expect(a.Front()).To(Equal(lo))
			Expect(a.Back()).To(BeNumerically("~", hi, 1e-9))
			r := a.Range()
			Expect(r.Lo).To(Equal(lo))
			Expect(r.Hi).To(BeNumerically("~", hi, 1e-9))
		},
		Entry("unit", 2, 0.0, 1.0),
		Entry("eleven", 11, 0.0, 10.0),
		Entry("descending", 401, 1.0, -1.0),
		Entry("many", 1001, -2.5, 1.0),
	)

	It("reaches end-1 after N-1 forward steps", func() {
		a := grid.MustAxis(7, -1, 1)
		it := a.Begin()
		for i := 0; i < a.Size()-1; i++ {
			it.Next()
		}
		last := a.End()
		last.Advance(-1)
		Expect(it.Equal(&last)).To(BeTrue())
		Expect(it.IsEnd()).To(BeFalse())
		it.Next()
		Expect(it.IsEnd()).To(BeTrue())
		Expect(it.Done()).To(BeTrue())
	})

	It("supports random access arithmetic", func() {
		a := grid.MustAxis(5, 0, 4)
		b := a.Begin()
		e := a.End()
		Expect(b.Distance(&e)).To(Equal(5))
		Expect(lazy.Distance[float64](&e, &b)).To(Equal(-5))

		it := a.Begin()
		it.Advance(3)
		Expect(it.Value()).To(Equal(3.0))
		Expect(it.Pos()).To(Equal(3))
		it.Advance(-2)
		Expect(it.Value()).To(Equal(1.0))
		it.Prev()
		Expect(it.IsBegin()).To(BeTrue())
	})

	It("orders cursors by index", func() {
		a := grid.MustAxis(4, 0, 1)
		x := a.Begin()
		y := a.Begin()
		y.Next()
		Expect(x.Less(&y)).To(BeTrue())
		Expect(y.Less(&x)).To(BeFalse())
		Expect(x.Compare(&y)).To(Equal(-1))
		Expect(y.Compare(&x)).To(Equal(1))
		x.Next()
		Expect(x.Compare(&y)).To(Equal(0))
		Expect(x.Equal(&y)).To(BeTrue())
	})

	It("resets and jumps to the end in one step", func() {
		a := grid.MustAxis(6, 0, 5)
		it := a.Begin()
		it.Advance(4)
		it.SetToEnd()
		Expect(it.IsEnd()).To(BeTrue())
		Expect(it.Pos()).To(Equal(6))
		it.Reset()
		Expect(it.IsBegin()).To(BeTrue())
		Expect(it.Value()).To(BeNumerically("~", 0, 1e-12))
	})

	It("distinguishes border and bulk samples", func() {
		a := grid.MustAxis(4, 0, 3)
		it := a.Begin()
		var bulk []bool
		for ; !it.Done(); it.Next() {
			bulk = append(bulk, it.InBulk())
		}
		Expect(bulk).To(Equal([]bool{false, true, true, false}))
	})

	It("wraps when moving a single axis", func() {
		a := grid.MustAxis(3, 0, 2)
		it := a.Begin()
		it.MoveBackward()
		Expect(it.Pos()).To(Equal(2))
		Expect(it.Value()).To(BeNumerically("~", 2, 1e-12))
		it.MoveForward()
		Expect(it.Pos()).To(Equal(0))
		it.MoveForward()
		Expect(it.Pos()).To(Equal(1))
	})

	It("reconstructs its interval from any cursor", func() {
		a := grid.MustAxis(9, -3, 5)
		for it := a.Begin(); !it.Done(); it.Next() {
			r := it.Range()
			Expect(r.Lo).To(BeNumerically("~", -3, 1e-9))
			Expect(r.Hi).To(BeNumerically("~", 5, 1e-9))
		}
	})
})
