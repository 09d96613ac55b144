package emulator

// EOFPolicy selects what an input instruction does once input is exhausted.
type EOFPolicy int

//go:generate go tool stringer -linecomment -type=EOFPolicy
const (
	EOF_ZERO  = EOFPolicy(0) // zero
	EOF_KEEP  = EOFPolicy(1) // keep
	EOF_ERROR = EOFPolicy(2) // error
)

// ParseEOFPolicy returns the policy named by text.
func ParseEOFPolicy(text string) (policy EOFPolicy, err error) {
	for _, policy = range []EOFPolicy{EOF_ZERO, EOF_KEEP, EOF_ERROR} {
		if policy.String() == text {
			return
		}
	}

	policy = EOF_ZERO
	err = ErrEOFPolicy(text)
	return
}
