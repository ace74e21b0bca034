package match

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Fuzzy matching needs two rows of a distance matrix per call. These are
// short-lived, so we pool them.
type rowPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

type row struct {
	cells []int
}

var globalRowPool *rowPool

func init() {
	globalRowPool = &rowPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &row{cells: make([]int, 0, 64)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRowPool.opool = pool.NewObjectPool(globalRowPool.ctx, factory, config)
}

// borrowRow returns a pooled row with n cells.
func borrowRow(n int) *row {
	o, err := globalRowPool.opool.BorrowObject(globalRowPool.ctx)
	if err != nil {
		T().Errorf("match: cannot borrow row from pool: %v", err)
		return &row{cells: make([]int, n)}
	}
	r := o.(*row)
	if cap(r.cells) < n {
		r.cells = make([]int, n)
	}
	r.cells = r.cells[:n]
	return r
}

// releaseRow puts a row back into the pool.
func releaseRow(r *row) {
	_ = globalRowPool.opool.ReturnObject(globalRowPool.ctx, r)
}
