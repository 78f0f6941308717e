package scoreboard

// Verdict is the judge outcome of a single submission.
type Verdict int

const (
	VerdictAccepted Verdict = iota
	VerdictWrongAnswer
	VerdictRuntimeError
	VerdictTimeLimitExceed
)

// ParseVerdict maps a status token to a Verdict. Unrecognized tokens are
// treated as Wrong_Answer on purpose, the contest feed is lenient.
func ParseVerdict(token string) Verdict {
	switch token {
	case "Accepted":
		return VerdictAccepted
	case "Wrong_Answer":
		return VerdictWrongAnswer
	case "Runtime_Error":
		return VerdictRuntimeError
	case "Time_Limit_Exceed":
		return VerdictTimeLimitExceed
	default:
		return VerdictWrongAnswer
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "Accepted"
	case VerdictWrongAnswer:
		return "Wrong_Answer"
	case VerdictRuntimeError:
		return "Runtime_Error"
	case VerdictTimeLimitExceed:
		return "Time_Limit_Exceed"
	default:
		return "Unknown"
	}
}
