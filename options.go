package covenant

type (
	settings struct {
		logger   Logger
		idPrefix string
	}

	// Option configures a Registry built by New.
	Option func(*settings)
)

// WithLogger sets the logger used to trace registrations and removals.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDPrefix changes the prefix of minted listener ids. An empty prefix keeps the default.
func WithIDPrefix(prefix string) Option {
	return func(s *settings) {
		if prefix != "" {
			s.idPrefix = prefix
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:   NewNoopLogger(),
		idPrefix: DefaultIDPrefix,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
