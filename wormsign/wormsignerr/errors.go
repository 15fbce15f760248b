package wormsignerr

var (
	// ErrInfectionFound indicates that at least one installed package matches a known-compromised release.
	ErrInfectionFound = NewExpectedErr("compromised packages found in the dependency set")
)
