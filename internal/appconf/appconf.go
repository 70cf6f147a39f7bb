package appconf

// Environment identifies the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// String returns the flag-style name of the environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts an -env flag value into an Environment.
// Unrecognized values map to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the application: the
// network port the server listens on, the operating environment, the set of
// valid API keys, and the per-key rate limit.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	Verbose   bool
}
