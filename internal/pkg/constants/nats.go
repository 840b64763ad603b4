package constants

// NATS subjects are "<root>.<event name>"
const (
	DefaultSubjectRoot = "crowdpulse"
	SubjectWildcard    = ">"
)
