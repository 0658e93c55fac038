package rustedbrain

type RunOutcome byte

const (
	DEBUG = false

	RunCompleted RunOutcome = 1
	RunFaulted   RunOutcome = 2
	RunLimited   RunOutcome = 3
	RunCanceled  RunOutcome = 4
)

func (o RunOutcome) String() string {
	switch o {
	case RunCompleted:
		return "completed"
	case RunFaulted:
		return "faulted"
	case RunLimited:
		return "limited"
	case RunCanceled:
		return "canceled"
	}
	return "unknown"
}
