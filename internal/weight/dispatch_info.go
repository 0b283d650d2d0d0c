package weight

import "fmt"

// DispatchClass decides which portion of the block a call is accounted against.
type DispatchClass uint8

const (
	Normal DispatchClass = iota
	Operational
	Mandatory
)

func (c DispatchClass) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Operational:
		return "Operational"
	case Mandatory:
		return "Mandatory"
	default:
		return fmt.Sprintf("DispatchClass(%d)", uint8(c))
	}
}

// Pays tells whether the sender is charged a fee for the call.
type Pays uint8

const (
	PaysYes Pays = iota
	PaysNo
)

func (p Pays) String() string {
	if p == PaysNo {
		return "No"
	}
	return "Yes"
}

// DispatchInfo is the weight information attached to a constructed call.
type DispatchInfo struct {
	Weight  Weight
	Class   DispatchClass
	PaysFee Pays
}
