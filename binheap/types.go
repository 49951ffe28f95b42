package binheap

// MaxCapacity is the upper bound on the capacity of any heap.
const MaxCapacity = 1000

// Order selects which extreme sits at the root.
type Order int

const (
	// Min keeps the smallest element at the root.
	Min Order = iota
	// Max keeps the largest element at the root.
	Max
)

// String returns "min" or "max".
func (o Order) String() string {
	if o == Max {
		return "max"
	}

	return "min"
}

// Reverse returns the opposite order.
func (o Order) Reverse() Order {
	if o == Max {
		return Min
	}

	return Max
}
