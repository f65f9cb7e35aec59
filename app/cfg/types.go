package cfg

type Cfg struct {
	// Store configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Summarizer configuration
	AIEndpoint  string
	AIModel     string
	AIAccessKey string

	// Application configuration
	Port            string
	RefreshInterval int
	WorkerCount     int
	PasswordSalt    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
