package models

// OutcomeKind discriminates the terminal results of a join attempt.
type OutcomeKind string

const (
	OutcomeAdmitted OutcomeKind = "admitted"
	OutcomeRejected OutcomeKind = "rejected"
	OutcomeTimedOut OutcomeKind = "timed_out"
	OutcomeFailed   OutcomeKind = "failed"
)

// Outcome is the tagged terminal result of a join attempt. Session is set
// only for Admitted; Reason only for Failed.
type Outcome struct {
	Kind    OutcomeKind
	Session *Session
	Reason  string
}

func Admitted(session *Session) Outcome {
	return Outcome{Kind: OutcomeAdmitted, Session: session}
}

func Rejected() Outcome {
	return Outcome{Kind: OutcomeRejected}
}

func TimedOut() Outcome {
	return Outcome{Kind: OutcomeTimedOut}
}

func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}
