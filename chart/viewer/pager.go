package viewer

// pager tracks the displayed page. Every dismissal, whether a key press or a
// window close request, moves to the next page until none are left.
type pager struct {
	n       int
	current int
}

// next advances to the following page and reports false once the last page
// has been dismissed.
func (p *pager) next() bool {
	if p.current+1 >= p.n {
		return false
	}
	p.current++
	return true
}
