package attendance

// Transition names the ledger effect of moving an attendance between statuses
type Transition int

const (
	// TransitionNone only updates fields on the record
	TransitionNone Transition = iota
	// TransitionLeavePresent gives a deducted visit back and reverts write-off
	TransitionLeavePresent
	// TransitionEnterPresent resolves a basis, deducts a visit and advances write-off
	TransitionEnterPresent
)

// String returns a readable name for logs
func (t Transition) String() string {
	switch t {
	case TransitionLeavePresent:
		return "leave_present"
	case TransitionEnterPresent:
		return "enter_present"
	default:
		return "none"
	}
}

type statusPair struct {
	from Status
	to   Status
}

// transitions enumerates every (from, to) pair. A status added to AllStatuses
// without rows here is caught by TestTransitionTableIsComplete.
var transitions = map[statusPair]Transition{
	{StatusPresent, StatusPresent}: TransitionNone,
	{StatusPresent, StatusAbsent}:  TransitionLeavePresent,
	{StatusPresent, StatusExcused}: TransitionLeavePresent,

	{StatusAbsent, StatusPresent}: TransitionEnterPresent,
	{StatusAbsent, StatusAbsent}:  TransitionNone,
	{StatusAbsent, StatusExcused}: TransitionNone,

	{StatusExcused, StatusPresent}: TransitionEnterPresent,
	{StatusExcused, StatusAbsent}:  TransitionNone,
	{StatusExcused, StatusExcused}: TransitionNone,
}

// ClassifyTransition looks up the effect of moving from one status to another
func ClassifyTransition(from, to Status) Transition {
	return transitions[statusPair{from: from, to: to}]
}
