// Package thermoinp decodes the NASA Glenn thermodynamic database source
// file (thermo.inp) into typed species records.
//
// # Data Source
//
// The database ships with the NASA CEA program (Gordon and McBride,
// "Computer Program for Calculating Chemical Equilibrium with Applications")
// and tabulates standard-state thermodynamic data for some 2000 chemical
// species. The file is a legacy fixed-column Fortran format: byte offsets
// within each line are load-bearing and any reformatting of the source file
// invalidates parsing.
//
// # File Layout
//
// The file is split into three categories of species, delimited by literal
// markers:
//
//	thermo                         <- file header
//	   200.000  1000.000 ...       <- common interval bounds line
//	e-   ...                       <- first gaseous product/reactant
//	...
//	Ag(cr)  ...                    <- first condensed product/reactant
//	...
//	END PRODUCTS
//	Air  ...                       <- first reactant (mixtures, fuels)
//	...
//	END REACTANTS
//
// Within a category, a new species dataset begins at any line whose first
// character is a lowercase 'e', an uppercase letter, or '('; the format
// carries no explicit record-length field.
//
// # Species Dataset Layout
//
// Line 0: name in columns [0,18), free-text comments in [18,end).
// Line 1: interval count at column 1; reference-date code in [2,10); five
// 8-column formula slots from column 10 (2-char element symbol plus 6-char
// atom count, fractional for reference mixtures such as Air; zero-count
// slots are dropped); phase at column 51 (0 gas, nonzero condensed);
// molar mass (kg/kmol) in [52,65); reference enthalpy in [65,end).
//
// When the interval count is positive the reference enthalpy is the heat of
// formation (J/mol) and each temperature interval follows as a group of
// exactly three lines:
//
//	Line 0: bounds in [0,22), coefficient count at column 22, nominal
//	        exponents in [23,63), reference enthalpy delta in [65,end).
//	Line 1: coefficients a1..a5 as five 16-char Fortran doubles.
//	Line 2: a6, a7 in [0,32); integration constants b1, b2 in [48,end).
//
// When the interval count is zero the species carries only an assigned
// enthalpy; exactly one further line follows whose first token is the
// reference temperature.
//
// Numeric arrays use Fortran-style doubles: 16-character fields with 'D' as
// the exponent marker ("-1.202860270D-08").
//
// # Polynomial Form
//
// Each interval's seven coefficients multiply the fixed exponent set
// {-2,-1,0,1,2,3,4} in the NASA 7-term form for dimensionless heat capacity
// Cp/R; the evaluator lives in the thermo package. The per-interval
// exponents field and coefficient count are retained as metadata but the
// canonical fixed set is assumed downstream.
package thermoinp
