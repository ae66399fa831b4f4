package counter

// Counter accumulates scanned candidates across search workers
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}

// Nop discards everything
var Nop Counter = nop{}

type nop struct{}

func (nop) Value() int64      { return 0 }
func (nop) RatePerSec() int64 { return 0 }
func (nop) Add(int64)         {}
