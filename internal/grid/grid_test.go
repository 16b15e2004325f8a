package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/lazy"
)

func newGrid(order grid.Order, axes ...grid.Axis) *grid.Grid {
	g, err := grid.New(len(axes), order, axes...)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func unitSquare(order grid.Order) *grid.Grid {
	return newGrid(order, grid.MustAxis(2, 0, 1), grid.MustAxis(2, 0, 1))
}

var _ = Describe("Grid", func() {
	It("rejects a mismatched axis count", func() {
		_, err := grid.New(3, grid.RowMajor, grid.MustAxis(2, 0, 1), grid.MustAxis(2, 0, 1))
		Expect(err).To(MatchError(grid.ErrInvalidGrid))

		_, err = grid.New(0, grid.RowMajor)
		Expect(err).To(MatchError(grid.ErrInvalidGrid))

		_, err = grid.New(1, grid.RowMajor, grid.Axis{})
		Expect(err).To(MatchError(grid.ErrInvalidGrid))
	})

	It("walks the last axis fastest in row-major order", func() {
		g := unitSquare(grid.RowMajor)
		Expect(lazy.Collect(g.Start())).To(Equal([][]float64{
			{0, 0}, {0, 1}, {1, 0}, {1, 1},
		}))
	})

	It("walks the first axis fastest in column-major order", func() {
		g := unitSquare(grid.ColMajor)
		Expect(lazy.Collect(g.Start())).To(Equal([][]float64{
			{0, 0}, {1, 0}, {0, 1}, {1, 1},
		}))
	})

	It("reports size, shape and ranges in construction order", func() {
		g := newGrid(grid.RowMajor,
			grid.MustAxis(4, 0, 10), grid.MustAxis(5, 0, 4), grid.MustAxis(3, -1, 1))
		Expect(g.Size()).To(Equal(60))
		Expect(g.Dim()).To(Equal(3))
		Expect(g.Shape()).To(Equal([]int{4, 5, 3}))
		r := g.Ranges()
		Expect(r).To(HaveLen(3))
		Expect(r[1].Lo).To(Equal(0.0))
		Expect(r[1].Hi).To(BeNumerically("~", 4, 1e-12))
		Expect(r[2].Lo).To(Equal(-1.0))
	})

	It("places End on the slowest axis only", func() {
		row := newGrid(grid.RowMajor, grid.MustAxis(3, 0, 1), grid.MustAxis(4, 0, 1))
		Expect(row.End().Indices()).To(Equal([]int{3, 0}))

		col := newGrid(grid.ColMajor, grid.MustAxis(3, 0, 1), grid.MustAxis(4, 0, 1))
		Expect(col.End().Indices()).To(Equal([]int{0, 4}))
	})

	for _, order := range []grid.Order{grid.RowMajor, grid.ColMajor} {
		order := order

		Context("in "+order.String()+"-major order", func() {
			var g *grid.Grid

			BeforeEach(func() {
				g = newGrid(order,
					grid.MustAxis(3, 0, 2), grid.MustAxis(4, 0, 3), grid.MustAxis(2, 0, 1))
			})

			It("reaches End after exactly Size steps", func() {
				it := g.Begin()
				end := g.End()
				for i := 0; i < g.Size(); i++ {
					Expect(it.Equal(end)).To(BeFalse())
					Expect(it.Done()).To(BeFalse())
					it.Next()
				}
				Expect(it.Equal(end)).To(BeTrue())
				Expect(it.Done()).To(BeTrue())
			})

			It("round-trips Next and Prev", func() {
				it := g.Begin()
				for !it.Done() {
					other := it.Clone()
					other.Next()
					other.Prev()
					Expect(other.Equal(it)).To(BeTrue())

					if !it.Equal(g.Begin()) {
						other = it.Clone()
						other.Prev()
						other.Next()
						Expect(other.Equal(it)).To(BeTrue())
					}
					it.Next()
				}
			})

			It("walks backward from End to Begin", func() {
				it := g.End()
				var back [][]int
				for !it.Equal(g.Begin()) {
					it.Prev()
					back = append(back, it.Indices())
				}
				var fwd [][]int
				for c := g.Begin(); !c.Done(); c.Next() {
					fwd = append(fwd, c.Indices())
				}
				Expect(back).To(HaveLen(len(fwd)))
				for i := range fwd {
					Expect(back[len(back)-1-i]).To(Equal(fwd[i]))
				}
			})

			It("orders positions like forward traversal", func() {
				var seen []*grid.Cursor
				for it := g.Begin(); !it.Done(); it.Next() {
					seen = append(seen, it.Clone())
				}
				seen = append(seen, g.End())
				for i := range seen {
					for j := range seen {
						Expect(seen[i].Less(seen[j])).To(Equal(i < j))
						Expect(seen[i].Compare(seen[j]) == 0).To(Equal(i == j))
						Expect(seen[i].Equal(seen[j])).To(Equal(i == j))
					}
				}
			})

			It("moves single axes without carrying", func() {
				it := g.Begin()
				it.MoveForward(0)
				before := it.Indices()
				it.MoveBackward(0)
				it.MoveBackward(0)
				after := it.Indices()

				fastest := 2
				if order == grid.ColMajor {
					fastest = 0
				}
				for i := range before {
					if i == fastest {
						continue
					}
					Expect(after[i]).To(Equal(before[i]))
				}
				Expect(after[fastest]).To(Equal(g.Shape()[fastest] - 1))
			})
		})
	}

	It("moves the slowest axis by traversal rank", func() {
		g := newGrid(grid.RowMajor, grid.MustAxis(3, 0, 2), grid.MustAxis(3, 0, 2))
		it := g.Begin()
		it.MoveForward(1)
		Expect(it.Value()).To(Equal([]float64{1, 0}))
		it.MoveForward(1)
		it.MoveForward(1)
		Expect(it.Value()).To(Equal([]float64{0, 0}))
	})

	It("marks only interior points as bulk", func() {
		g := newGrid(grid.RowMajor, grid.MustAxis(3, 0, 2), grid.MustAxis(4, 0, 3))
		bulk := 0
		for it := g.Begin(); !it.Done(); it.Next() {
			if it.InBulk() {
				idx := it.Indices()
				Expect(idx[0]).To(Equal(1))
				Expect(idx[1]).To(BeElementOf(1, 2))
				bulk++
			}
		}
		Expect(bulk).To(Equal(2))
	})

	It("keeps cloned cursors independent", func() {
		g := unitSquare(grid.RowMajor)
		a := g.Begin()
		b := a.Clone()
		a.Next()
		Expect(b.Indices()).To(Equal([]int{0, 0}))
		Expect(a.Indices()).To(Equal([]int{0, 1}))
	})

	It("iterates with range-over-func", func() {
		g := unitSquare(grid.ColMajor)
		n := 0
		for p := range g.All() {
			Expect(p).To(HaveLen(2))
			n++
		}
		Expect(n).To(Equal(g.Size()))
	})

	It("parses traversal orders", func() {
		o, err := grid.ParseOrder("col")
		Expect(err).NotTo(HaveOccurred())
		Expect(o).To(Equal(grid.ColMajor))
		_, err = grid.ParseOrder("diagonal")
		Expect(err).To(HaveOccurred())
	})
})
