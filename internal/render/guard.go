package render

import (
	"context"

	"github.com/san-kum/colormap/internal/lazy"
)

// guard ends a sequence early once ctx is done. Consumers see a short
// sequence and the caller reports ctx.Err().
func guard[T any](ctx context.Context, d lazy.Domain[T]) lazy.Domain[T] {
	if ctx.Done() == nil {
		return d
	}
	return guarded[T]{ctx: ctx, d: d}
}

type guarded[T any] struct {
	ctx context.Context
	d   lazy.Domain[T]
}

func (g guarded[T]) Size() int { return g.d.Size() }

func (g guarded[T]) Start() lazy.Forward[T] {
	return &guardedCursor[T]{Forward: g.d.Start(), done: g.ctx.Done()}
}

type guardedCursor[T any] struct {
	lazy.Forward[T]
	done <-chan struct{}
	n    int
}

const guardEvery = 1024

func (c *guardedCursor[T]) Done() bool {
	c.n++
	if c.n%guardEvery == 0 {
		select {
		case <-c.done:
			return true
		default:
		}
	}
	return c.Forward.Done()
}
