package scrollview

import (
	"log/slog"
	"math"
)

// CellSlot records what a pooled cell currently shows.
type CellSlot struct {
	Index    int     // item index, -1 before first use
	Visible  bool    // last visibility pushed to the cell
	Position float64 // last normalized position pushed to the cell
}

// Pool owns the cells of a view and maps them onto items for a given scroll
// position. It only ever grows: cells are created on demand, reused as the
// list scrolls, and hidden rather than destroyed when not needed.
//
// Usage:
//
//	pool, err := scrollview.NewPool(factory, ctx)
//	err = pool.Update(position, 0.2, 0.5, false, items, false)
type Pool[T any] struct {
	factory CellFactory[T]
	ctx     *CellContext

	cells []Cell[T]
	slots []CellSlot

	metrics *Metrics
	logger  *slog.Logger
}

// NewPool creates an empty pool. A nil factory is a configuration error.
func NewPool[T any](factory CellFactory[T], ctx *CellContext) (*Pool[T], error) {
	if factory == nil {
		return nil, configError("NewPool", "cell factory is nil")
	}
	if ctx == nil {
		ctx = &CellContext{}
	}
	return &Pool[T]{
		factory: factory,
		ctx:     ctx,
		logger:  scrollLogger,
	}, nil
}

// Len returns the number of cells created so far.
func (p *Pool[T]) Len() int { return len(p.cells) }

// Slot returns the state of cell i.
func (p *Pool[T]) Slot(i int) CellSlot { return p.slots[i] }

// Cell returns cell i.
func (p *Pool[T]) Cell(i int) Cell[T] { return p.cells[i] }

// Context returns the context handed to every cell.
func (p *Pool[T]) Context() *CellContext { return p.ctx }

// Update lays out cells for index-space position. interval is the normalized
// distance between neighbouring cells and scrollOffset the normalized position
// of the item at position. With loop set, indices wrap around items. Cells
// whose item did not change are not refreshed unless forceRefresh is set;
// every cell still receives its position.
func (p *Pool[T]) Update(position, interval, scrollOffset float64, loop bool, items []T, forceRefresh bool) error {
	if !(interval >= minCellInterval) || math.IsInf(interval, 0) {
		return configError("Update", "cell interval must be at least %v, got %v", minCellInterval, interval)
	}

	p1 := position - scrollOffset/interval
	firstIndex := int(math.Ceil(p1))
	firstPosition := (math.Ceil(p1) - p1) * interval

	if firstPosition+float64(len(p.cells))*interval < 1 {
		need := int(math.Ceil((1-firstPosition)/interval)) - len(p.cells)
		if err := p.grow(need); err != nil {
			return err
		}
	}

	count := len(items)
	for i := range p.cells {
		index := firstIndex + i
		pos := firstPosition + float64(i)*interval
		slotIndex := CircularIndex(index, len(p.cells))
		cell, slot := p.cells[slotIndex], &p.slots[slotIndex]

		if loop {
			index = CircularIndex(index, count)
		}

		if index < 0 || index >= count || pos > 1 {
			if slot.Visible {
				cell.SetVisible(false)
				slot.Visible = false
			}
			continue
		}

		if forceRefresh || slot.Index != index || !slot.Visible {
			slot.Index = index
			if !slot.Visible {
				cell.SetVisible(true)
				slot.Visible = true
			}
			cell.UpdateContent(items[index])
			p.metrics.contentRefreshed()
		}

		slot.Position = pos
		cell.UpdatePosition(pos)
	}
	return nil
}

func (p *Pool[T]) grow(n int) error {
	for i := 0; i < n; i++ {
		cell := p.factory()
		if cell == nil {
			return configError("Update", "cell factory returned nil")
		}
		cell.Configure(p.ctx)
		cell.SetVisible(false)
		p.cells = append(p.cells, cell)
		p.slots = append(p.slots, CellSlot{Index: -1})
		p.metrics.cellCreated()
	}
	p.metrics.poolSize(len(p.cells))
	p.logger.Debug("cell pool grown", "added", n, "size", len(p.cells))
	return nil
}
