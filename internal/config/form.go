package config

type Form struct {
	// RecomputeDefaultOnReset recomputes the appointment default when the
	// form resets after a save instead of keeping the one computed on page
	// load.
	RecomputeDefaultOnReset bool `env:"RECOMPUTE_DEFAULT_ON_RESET,expand" envDefault:"false"`
}
