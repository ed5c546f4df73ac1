package bench

import "github.com/Pallinder/go-randomdata"

const (
	PayloadFixed  = "fixed"
	PayloadRandom = "random"
)

// FixedValue is the element every timed workload inserts when the payload is fixed.
const FixedValue = "prep"

// MakePayload generates the values a timed workload inserts, so that generating them is never measured.
func MakePayload(kind string, n int) ([]string, error) {
	vs := make([]string, n)
	switch kind {
	case PayloadFixed, "":
		for i := range vs {
			vs[i] = FixedValue
		}
	case PayloadRandom:
		for i := range vs {
			vs[i] = randomdata.SillyName()
		}
	default:
		return nil, ErrUnknownPayload.F("%q (expected %q or %q)", kind, PayloadFixed, PayloadRandom)
	}
	return vs, nil
}
