package seqlist

import "math"

// Build-time tunables.
const (
	// FixedCapacity is the cell count of a list created by NewFixed.
	FixedCapacity = 100

	// InitialCapacity is the starting cell count of a list created by NewDynamic.
	InitialCapacity = 10

	// GrowthIncrement is the number of cells a dynamic list adds when it grows.
	GrowthIncrement = 5

	// MaxCapacity bounds the growth of a dynamic list; element counts are
	// kept within the 32-bit range.
	MaxCapacity = math.MaxInt32
)

// Kind selects the capacity policy of a List.
type Kind int

const (
	// Fixed lists keep the capacity they were created with.
	Fixed Kind = iota
	// Dynamic lists grow by a fixed increment when full.
	Dynamic
)

// String returns "fixed" or "dynamic".
func (k Kind) String() string {
	if k == Dynamic {
		return "dynamic"
	}

	return "fixed"
}

// List is a sequential list of int values.
//
// Cells data[0:length] are valid; length <= len(data) always holds.
// A destroyed list has data == nil and rejects every operation.
type List struct {
	data   []int
	length int
	kind   Kind
	growth int // cells added per growth step; 0 for Fixed
}

// Option configures a dynamic list. Option constructors panic on
// nonsensical values, which are programmer errors.
type Option func(*options)

type options struct {
	initial int
	growth  int
}

const (
	panicInitialCapacity = "seqlist: WithInitialCapacity: n must be > 0"
	panicGrowthIncrement = "seqlist: WithGrowthIncrement: n must be > 0"
)

// WithInitialCapacity overrides InitialCapacity for NewDynamic.
func WithInitialCapacity(n int) Option {
	if n <= 0 || n > MaxCapacity {
		panic(panicInitialCapacity)
	}

	return func(o *options) { o.initial = n }
}

// WithGrowthIncrement overrides GrowthIncrement for NewDynamic.
func WithGrowthIncrement(n int) Option {
	if n <= 0 {
		panic(panicGrowthIncrement)
	}

	return func(o *options) { o.growth = n }
}

func gatherOptions(opts []Option) options {
	o := options{initial: InitialCapacity, growth: GrowthIncrement}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
