package item

import "fmt"

// UberStateOp is the operation an UberStateSet item applies to the target
// state.
type UberStateOp int

const (
	UberStateOpSet UberStateOp = iota
	UberStateOpAdd
	UberStateOpSubtract
)

func (o UberStateOp) String() string {
	switch o {
	case UberStateOpSet:
		return "Set"
	case UberStateOpAdd:
		return "Add"
	case UberStateOpSubtract:
		return "Subtract"
	default:
		return fmt.Sprintf("UberStateOp(%d)", int(o))
	}
}

// UberStateSet sets a game-state variable identified by (group, id); may be
// progression when the targeted state gates a connection elsewhere in the
// graph.
type UberStateSet struct {
	Group uint32
	ID    uint32
	Type  UberType
	Op    UberStateOp
	Value int32
	Skip  bool // suppress triggers normally fired by this state change
}

// UberType is the storage width/representation of the targeted uber state.
type UberType int

const (
	UberTypeBool UberType = iota
	UberTypeByte
	UberTypeInt
	UberTypeFloat
)

func (t UberType) code() string {
	switch t {
	case UberTypeBool:
		return "0"
	case UberTypeByte:
		return "1"
	case UberTypeInt:
		return "2"
	case UberTypeFloat:
		return "3"
	default:
		return "0"
	}
}

func (u UberStateSet) String() string {
	skip := ""
	if u.Skip {
		skip = ", skipping triggers"
	}
	return fmt.Sprintf("%s uber state %d|%d to %d%s", u.Op, u.Group, u.ID, u.Value, skip)
}

// Code returns the wire payload, nested under the top-level Item's "8|"
// prefix.
func (u UberStateSet) Code() string {
	sign := ""
	switch u.Op {
	case UberStateOpAdd:
		sign = "+"
	case UberStateOpSubtract:
		sign = "-"
	}
	skip := "0"
	if u.Skip {
		skip = "1"
	}
	return fmt.Sprintf("%d|%d|%s|%s%d|%s", u.Group, u.ID, u.Type.code(), sign, u.Value, skip)
}
