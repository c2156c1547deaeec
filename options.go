package libfqfft

// domainConfig carries the tunables shared by the concrete domain families.
type domainConfig struct {
	numGoRoutines int
}

// DomainOption configures a domain at construction time.
type DomainOption func(*domainConfig)

// WithNumGoRoutines sets the number of goroutines the domain may use for a
// single transform. The degree is resolved here, once, rather than read from
// the runtime inside the transform; pass runtime.NumCPU() to use every core.
// Values below 2 select the sequential path, which is also the default.
func WithNumGoRoutines(n int) DomainOption {
	return func(cfg *domainConfig) {
		cfg.numGoRoutines = n
	}
}

func newDomainConfig(opts []DomainOption) domainConfig {
	var cfg domainConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
