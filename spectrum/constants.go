package spectrum

// Physical constants in CGS units (CODATA 2018).
const (
	// KBoltzmann is the Boltzmann constant, erg/K.
	KBoltzmann = 1.380649e-16

	// CLight is the speed of light in vacuum, cm/s.
	CLight = 2.99792458e10

	// HPlanck is the Planck constant, erg*s.
	HPlanck = 6.62607015e-27

	// MElectron is the electron rest mass, g.
	MElectron = 9.1093837015e-28

	// EChargeGauss is the elementary charge in Gaussian units, statC.
	EChargeGauss = 4.80320425e-10
)
