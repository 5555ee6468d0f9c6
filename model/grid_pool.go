package model

import "sync"

// BufferPool recycles cell buffers between generations
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &[][]bool{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, shaped to width x height. Contents
// are unspecified; callers overwrite every cell.
func (p *BufferPool) Get(width, height int) [][]bool {
	if p == nil {
		return newCells(width, height)
	}
	cells := *p.pool.Get().(*[][]bool)
	if len(cells) != height {
		cells = make([][]bool, height)
	}
	for i := range cells {
		if len(cells[i]) != width {
			cells[i] = make([]bool, width)
		}
	}
	return cells
}

// Put returns a buffer to the pool
func (p *BufferPool) Put(cells [][]bool) {
	if p == nil || cells == nil {
		return
	}
	p.pool.Put(&cells)
}
