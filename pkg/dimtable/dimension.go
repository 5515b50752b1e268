package dimtable

// BaseDimension identifies one of the seven SI base dimensions, in the
// column order used by quantity tables.
type BaseDimension int

const (
	Length BaseDimension = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
)

// BaseDimensionCount is the number of exponent columns in every row.
const BaseDimensionCount = 7

// SignatureLen is the number of integers in a [Signature].
const SignatureLen = 2 * BaseDimensionCount

// BaseDimensions lists all base dimensions in column order.
var BaseDimensions = [BaseDimensionCount]BaseDimension{
	Length, Mass, Time, Current, Temperature, Amount, LuminousIntensity,
}

var baseDimensionNames = [BaseDimensionCount]string{
	"length",
	"mass",
	"time",
	"current",
	"temperature",
	"amount",
	"luminous_intensity",
}

func (d BaseDimension) String() string {
	if d < 0 || int(d) >= BaseDimensionCount {
		return "unknown"
	}

	return baseDimensionNames[d]
}
