package miner

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoSlots is returned when a status payload parses but contains no
// hashboard data, usually a sign the unit is booting or the firmware page
// changed shape.
var ErrNoSlots = errors.New("no slots found in miner report")

const (
	textareaMarker = `id="syslog">`
	textareaClose  = "</textarea>"
)

// ParseStatusPage extracts the chip report embedded in the miner's status
// HTML (a <textarea id="syslog"> block) and parses it.
func ParseStatusPage(html string) (Data, error) {
	start := strings.Index(html, textareaMarker)
	if start < 0 {
		return Data{}, errors.New("status page missing syslog textarea")
	}
	start += len(textareaMarker)
	end := strings.Index(html[start:], textareaClose)
	if end < 0 {
		return Data{}, errors.New("status page has unclosed syslog textarea")
	}
	return ParseReport(html[start : start+end])
}

// ParseReport parses the plain-text chip report. The format is line based:
//
//	slot: 0, freq: 620, temp: 68.5, step: 2
//	nonce valid: 981367(3182/s), err: 12, crc: 3
//	C0  freq:620 vol:850 temp:75 nonce:12345 err:0 crc:0 x:0 repeat:0 pct: 98.8%/ 94.1%
//
// Unparseable numeric fields default to zero; chip order within a slot is
// preserved exactly as reported since flat index is the addressing scheme for
// all downstream analysis.
func ParseReport(text string) (Data, error) {
	var slots []Slot
	var current *Slot

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "slot:"):
			if current != nil {
				slots = append(slots, *current)
			}
			s := parseSlotHeader(line)
			current = &s
		case strings.HasPrefix(line, "nonce valid:"):
			if current != nil {
				parseNonceLine(line, current)
			}
		case strings.HasPrefix(line, "C") && strings.Contains(line, "freq:"):
			if current != nil {
				if chip, ok := parseChipLine(line); ok {
					current.Chips = append(current.Chips, chip)
				}
			}
		}
	}
	if current != nil {
		slots = append(slots, *current)
	}

	if len(slots) == 0 {
		return Data{}, ErrNoSlots
	}
	return Data{Slots: slots}, nil
}

func parseSlotHeader(line string) Slot {
	var slot Slot
	for _, part := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		switch strings.TrimSpace(key) {
		case "slot":
			slot.ID = atoi(val)
		case "freq":
			slot.Freq = atoi(val)
		case "temp":
			slot.Temp, _ = strconv.ParseFloat(val, 64)
		case "step":
			slot.Step = atoi(val)
		}
	}
	return slot
}

// parseNonceLine fills the slot totals from a line like
// "nonce valid: 981367(3182/s), err: 12, crc: 3".
func parseNonceLine(line string, slot *Slot) {
	if _, rest, ok := strings.Cut(line, ":"); ok {
		if count, tail, found := strings.Cut(rest, "("); found {
			slot.NonceValid, _ = strconv.ParseInt(strings.TrimSpace(count), 10, 64)
			if rate, _, hasRate := strings.Cut(tail, "/s)"); hasRate {
				slot.NonceRate = atoi(rate)
			}
		}
	}

	for _, part := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "err":
			slot.Errors = atoi(strings.TrimSpace(val))
		case "crc":
			slot.CRC = atoi(strings.TrimSpace(val))
		}
	}
}

func parseChipLine(line string) (Chip, bool) {
	idEnd := strings.IndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	if idEnd <= 1 {
		return Chip{}, false
	}
	id, err := strconv.Atoi(line[1:idEnd])
	if err != nil {
		return Chip{}, false
	}
	chip := Chip{ID: id}

	// pct has its own shape ("pct: 98.8%/ 94.1%") with a space after the
	// colon, so it cannot ride the whitespace-token loop below.
	if pctIdx := strings.Index(line, "pct:"); pctIdx >= 0 {
		pctStr := strings.TrimSpace(line[pctIdx+4:])
		parts := strings.Split(pctStr, "/")
		if len(parts) > 0 {
			chip.Pct1 = parsePct(parts[0])
		}
		if len(parts) > 1 {
			chip.Pct2 = parsePct(parts[1])
		}
	}

	for _, part := range strings.Fields(line) {
		key, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		switch key {
		case "freq":
			chip.Freq = atoi(val)
		case "vol":
			chip.Vol = atoi(val)
		case "temp":
			chip.Temp = atoi(val)
		case "nonce":
			chip.Nonce, _ = strconv.ParseInt(val, 10, 64)
		case "err":
			chip.Errors = atoi(val)
		case "crc":
			chip.CRC = atoi(val)
		case "x":
			chip.X = atoi(val)
		case "repeat":
			chip.Repeat = atoi(val)
		}
	}
	return chip, true
}

func parsePct(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	return v
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
