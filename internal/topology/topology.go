// Package topology maps the linear chip sequence reported by a miner onto the
// physical layout of a hashboard. It is the single source of truth for the
// snake-pattern section split; both the analysis engine and every rendering
// surface must derive coordinates from here rather than reimplementing the
// formulas.
//
// Physical model: chips are grouped into domains (vertical clusters of
// ChipsPerDomain chips). Domains are laid out across two board halves with a
// snake routing pattern:
//
//	Top section:    [D30][D31]...[D58][D59]  <- highest domain at the intake
//	Bottom section: [D29][D28]...[D1][D0]    <- D0 at the intake
//
// Airflow travels right to left, so the intake (cooler) end differs per
// section: D0 for the bottom half, the highest domain for the top half.
package topology

// Coordinates locates a single chip on the board.
type Coordinates struct {
	Domain     int
	Row        int
	TopSection bool
}

// Layout describes how one board's chip sequence decomposes into domains and
// the two snake sections. A Layout is valid for a single (chipCount,
// chipsPerDomain) pair; boards are only comparable when they share
// ChipsPerDomain.
type Layout struct {
	ChipCount      int
	ChipsPerDomain int
	NumDomains     int
	BottomDomains  int
	TopDomains     int
}

// NewLayout computes the domain decomposition and section split for a board.
// A zero chip count or zero chips-per-domain yields an empty layout that every
// query method treats as "no neighbors, no coordinates".
func NewLayout(chipCount, chipsPerDomain int) Layout {
	if chipCount <= 0 || chipsPerDomain <= 0 {
		return Layout{}
	}

	numDomains := (chipCount + chipsPerDomain - 1) / chipsPerDomain

	// Snake section split: the first domain always belongs to the bottom
	// section, the remainder splits as evenly as possible with the odd
	// domain going to the bottom.
	remaining := numDomains - 1
	if remaining < 0 {
		remaining = 0
	}
	bottom := 1 + remaining/2
	top := remaining - remaining/2

	return Layout{
		ChipCount:      chipCount,
		ChipsPerDomain: chipsPerDomain,
		NumDomains:     numDomains,
		BottomDomains:  bottom,
		TopDomains:     top,
	}
}

// Valid reports whether the layout describes at least one chip.
func (l Layout) Valid() bool {
	return l.ChipCount > 0 && l.ChipsPerDomain > 0
}

// Coordinates returns the (domain, row, section) position of a flat chip
// index. Out-of-range indices and empty layouts return the zero value.
func (l Layout) Coordinates(idx int) Coordinates {
	if !l.Valid() || idx < 0 || idx >= l.ChipCount {
		return Coordinates{}
	}
	domain := idx / l.ChipsPerDomain
	return Coordinates{
		Domain:     domain,
		Row:        idx % l.ChipsPerDomain,
		TopSection: domain >= l.BottomDomains,
	}
}

// ChipIndex converts (domain, row) back to a flat index, or -1 when the cell
// does not exist on this board (ragged last domain).
func (l Layout) ChipIndex(domain, row int) int {
	if !l.Valid() || domain < 0 || domain >= l.NumDomains || row < 0 || row >= l.ChipsPerDomain {
		return -1
	}
	idx := domain*l.ChipsPerDomain + row
	if idx >= l.ChipCount {
		return -1
	}
	return idx
}

// UpstreamNeighbors returns the flat indices of the chips adjacent to idx on
// the intake side plus its row neighbors, between zero and three entries:
//
//   - one airflow-upstream chip: domain-1 in the bottom section (D0 is the
//     intake and has none), domain+1 in the top section (the highest domain
//     is the intake and has none). Downstream domains are excluded.
//   - up to two row neighbors (row-1, row+1) within the same domain; these
//     sit at the same airflow position in either section.
//
// Neighbors whose index falls past the board's actual chip count are omitted.
// The last bottom-section domain and the first top-section domain share a
// physical position at the board seam but are deliberately never compared.
func (l Layout) UpstreamNeighbors(idx int) []int {
	if !l.Valid() || idx < 0 || idx >= l.ChipCount {
		return nil
	}
	c := l.Coordinates(idx)

	neighbors := make([]int, 0, 3)
	if c.TopSection {
		if n := l.ChipIndex(c.Domain+1, c.Row); n >= 0 {
			neighbors = append(neighbors, n)
		}
	} else if c.Domain > 0 {
		if n := l.ChipIndex(c.Domain-1, c.Row); n >= 0 {
			neighbors = append(neighbors, n)
		}
	}
	if n := l.ChipIndex(c.Domain, c.Row-1); n >= 0 {
		neighbors = append(neighbors, n)
	}
	if n := l.ChipIndex(c.Domain, c.Row+1); n >= 0 {
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// InferChipsPerDomain guesses the chips-per-domain value for a board whose
// model could not be resolved against the hardware table. Candidates are the
// domain sizes seen across WhatsMiner boards; the smallest that divides the
// chip count evenly into a plausible number of domains wins.
func InferChipsPerDomain(chipCount int) int {
	if chipCount > 0 {
		for _, cpd := range []int{3, 2, 4, 5, 6} {
			if chipCount%cpd == 0 {
				domains := chipCount / cpd
				if domains >= 20 && domains <= 100 {
					return cpd
				}
			}
		}
		// Smaller boards or unusual counts: accept any even division.
		for _, cpd := range []int{2, 3, 4, 5, 6} {
			if chipCount%cpd == 0 {
				return cpd
			}
		}
	}
	return 3
}
