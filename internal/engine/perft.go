package engine

// Perft counts the leaf positions reachable from p at exactly depth
// plies, the correctness benchmark of §6/§8. depth 0 counts the
// current position itself.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.LegalMoves() {
		if err := p.Make(m); err != nil {
			continue
		}
		nodes += p.Perft(depth - 1)
		p.Unmake()
	}
	return nodes
}

// Divide breaks perft(depth) down by the root move that led to each
// subtree, keyed by coordinate notation (e.g. "e2e4", "a7a8q") — the
// standard debugging aid for isolating which first move's subtree
// disagrees with a reference count.
func (p *Position) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}

	for _, m := range p.LegalMoves() {
		if err := p.Make(m); err != nil {
			continue
		}
		counts[m.String()] += p.Perft(depth - 1)
		p.Unmake()
	}
	return counts
}
