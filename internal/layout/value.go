package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by content, grow weight or stretch
	UnitFixed             // Absolute pixels
)

// Value represents a dimension that is either fixed or auto.
type Value struct {
	Amount int
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
// Negative amounts are clamped to zero.
func Fixed(n int) Value {
	if n < 0 {
		n = 0
	}
	return Value{Amount: n, Unit: UnitFixed}
}

// Resolve returns the fixed amount, or fallback for UnitAuto.
func (v Value) Resolve(fallback int) int {
	if v.Unit == UnitFixed {
		return v.Amount
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
