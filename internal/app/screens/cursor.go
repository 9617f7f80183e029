package screens

import "github.com/rook-computer/pocketedit/internal/input"

// pagedCursor moves a selection through a list shown as pages of columns.
// Up and down step one entry, left and right jump a column, L and R a page.
type pagedCursor struct {
	perPage int
	columns int
	full    int
}

func (p *pagedCursor) rows() int { return p.perPage / p.columns }

func (p *pagedCursor) page() int { return p.full / p.perPage }

// index is the position on the current page.
func (p *pagedCursor) index() int { return p.full % p.perPage }

func (p *pagedCursor) update(in input.State, total int) {
	if total <= 0 {
		p.full = 0
		return
	}
	switch {
	case in.Pressed(input.KeyDDown):
		p.full++
	case in.Pressed(input.KeyDUp):
		p.full--
	case in.Pressed(input.KeyDRight):
		p.full += p.rows()
	case in.Pressed(input.KeyDLeft):
		p.full -= p.rows()
	case in.Pressed(input.KeyR):
		p.full += p.perPage
	case in.Pressed(input.KeyL):
		p.full -= p.perPage
	}
	p.clamp(total)
}

func (p *pagedCursor) clamp(total int) {
	if p.full >= total {
		p.full = total - 1
	}
	if p.full < 0 {
		p.full = 0
	}
}
