package thermo

// Constants holds the physical constants property evaluation depends on.
// They are injected explicitly rather than read from a package variable so
// callers can pin a convention (and tests can vary it).
//
// CEA evaluates the dimensionless polynomial form against the molar gas
// constant defined by Gordon and McBride, R = 8.314510 J/mol-K, which
// differs in the last digits from the CODATA recommendation. Consistent
// dimensioned properties require the same value throughout.
type Constants struct {
	R              float64 // molar gas constant, CODATA 2010, J/mol-K
	RCEA           float64 // molar gas constant per Gordon & McBride, J/mol-K
	MolarMassConst float64 // molar mass constant, kg/mol
}

// CEA returns the constants used by the NASA CEA program and its database.
func CEA() Constants {
	return Constants{
		R:              8.3144621,
		RCEA:           8.314510,
		MolarMassConst: 1e-3,
	}
}
