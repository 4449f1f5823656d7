package miner

// Data is one full reading scraped from a miner: every hashboard slot in the
// order the firmware reports them. Snapshots are immutable once parsed;
// analysis never mutates them.
type Data struct {
	Slots []Slot `json:"slots"`
}

// TotalChips returns the chip count summed across all slots.
func (d Data) TotalChips() int {
	total := 0
	for _, s := range d.Slots {
		total += len(s.Chips)
	}
	return total
}

// Slot is a single hashboard. Chip order is significant: the index within
// Chips is the sole addressing scheme for topology and cross-slot comparison.
type Slot struct {
	ID         int    `json:"id"`
	Freq       int    `json:"freq"`
	Temp       float64 `json:"temp"`
	Step       int    `json:"step"`
	NonceValid int64  `json:"nonce_valid"`
	NonceRate  int    `json:"nonce_rate"`
	Errors     int    `json:"errors"`
	CRC        int    `json:"crc"`
	Chips      []Chip `json:"chips"`
}

// Chip is one ASIC reading. Temp is integer degrees C as reported by the
// firmware; Nonce is the valid-share count used as the throughput signal.
type Chip struct {
	ID     int     `json:"id"`
	Freq   int     `json:"freq"`
	Vol    int     `json:"vol"`
	Temp   int     `json:"temp"`
	Nonce  int64   `json:"nonce"`
	Errors int     `json:"errors"`
	CRC    int     `json:"crc"`
	X      int     `json:"x"`
	Repeat int     `json:"repeat"`
	Pct1   float64 `json:"pct1"`
	Pct2   float64 `json:"pct2"`
}

// SystemInfo identifies the unit; Model drives the board-spec lookup.
type SystemInfo struct {
	Model           string `json:"model"`
	HardwareInfo    string `json:"hardware_info"`
	FirmwareVersion string `json:"firmware_version"`
}
