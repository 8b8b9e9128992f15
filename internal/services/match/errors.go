package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     MatchError = "config cannot be nil"
	ErrNilRepository MatchError = "tournament repository cannot be nil"
	ErrNilResolver   MatchError = "match resolver cannot be nil"
	ErrNilInput      MatchError = "input cannot be nil"
	ErrBadResolution MatchError = "resolver returned a player outside the pair"
)
