// Package boardspec resolves a miner model name to its board geometry. The
// table mirrors the hardware definitions shipped in WhatsMiner firmware;
// lookup is fuzzy because the model string arrives in several shapes ("M50S
// VH50", "WhatsMiner M50S_VH55", full hardware strings like
// "M50S++_VK40.H616-CB6V10...").
//
// Callers that miss the table fall back to topology.InferChipsPerDomain.
package boardspec

import "strings"

// Spec is the geometry of one miner model.
type Spec struct {
	Model          string
	ChipCount      int
	ChipsPerDomain int
	BoardCount     int
}

// DomainsPerBoard returns the domain count of a single hashboard.
func (s Spec) DomainsPerBoard() int {
	if s.ChipsPerDomain == 0 {
		return 0
	}
	return s.ChipCount / s.ChipsPerDomain
}

// ChipsPerBoard returns the chip count of a single hashboard.
func (s Spec) ChipsPerBoard() int {
	if s.BoardCount == 0 {
		return 0
	}
	return s.ChipCount / s.BoardCount
}

// normalize uppercases, strips everything but alphanumerics and '+' (kept for
// the M50S++ style names), and drops the WHATSMINER prefix.
func normalize(model string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(model) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "WHATSMINER")
}

// Lookup resolves a model name to its spec, or nil when the model is unknown.
// Matching order: exact containment of a table model in the normalized input,
// then longest shared prefix (so "M50SVH55" resolves to the M50SVH50 board,
// which shares its geometry), then bare series ("M50S", "M60S").
func Lookup(model string) *Spec {
	normalized := normalize(model)
	if normalized == "" {
		return nil
	}

	for i := range specs {
		if strings.Contains(normalized, specs[i].Model) {
			return &specs[i]
		}
	}

	for prefixLen := len(normalized); prefixLen >= 4; prefixLen-- {
		prefix := normalized[:prefixLen]
		for i := range specs {
			if strings.HasPrefix(specs[i].Model, prefix) {
				return &specs[i]
			}
		}
	}

	if seriesEnd := strings.IndexAny(normalized, "V+"); seriesEnd > 0 {
		series := normalized[:seriesEnd]
		for i := range specs {
			if strings.HasPrefix(specs[i].Model, series) {
				return &specs[i]
			}
		}
	}

	return nil
}
