package base

// Scalar is the floating point type used for all font metrics, advances,
// and layout coordinates throughout the module.
type Scalar = float32

// ScalarNearlyZero is the threshold below which a Scalar is treated as zero,
// used when comparing advances and metrics that accumulate rounding error.
const ScalarNearlyZero = 1.0 / (1 << 12)
