package session

//go:generate go run github.com/dmarkham/enumer -type Outcome -trimprefix Outcome -transform snake -output outcome.gen.go

// Outcome is the terminal state of a request's session check.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAuthorizedForRead
	OutcomeAuthorizedForMutation
)

// Authorized reports whether the request may proceed.
func (i Outcome) Authorized() bool {
	return i == OutcomeAuthorizedForRead || i == OutcomeAuthorizedForMutation
}
