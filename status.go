package neuralnet

type status int8

const (
	finalized status = iota // 0
	evaluated status = iota // 1
	deltas    status = iota // 2
	adjusted  status = iota // 3
)

func (s status) String() string {
	switch s {
	case finalized:
		return "finalized"
	case evaluated:
		return "evaluated"
	case deltas:
		return "deltas"
	case adjusted:
		return "adjusted"
	}

	return "unknown"
}
