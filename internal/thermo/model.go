package thermo

import (
	"math"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// Properties is an immutable snapshot of the standard-state (P = 100 kPa)
// state functions at one temperature. All nine values are computed from a
// single interval selection, so a retained snapshot can never mix
// intervals.
type Properties struct {
	T float64 `json:"temperature_k"`

	// Dimensionless forms as tabulated: Cp/Ru, H/(Ru*T), S/Ru.
	CpND float64 `json:"cp_nd"`
	HND  float64 `json:"h_nd"`
	SND  float64 `json:"s_nd"`

	// Molar properties, scaled by the CEA molar gas constant.
	CpMolar float64 `json:"cp_molar"` // J/mol-K
	HMolar  float64 `json:"h_molar"`  // J/mol
	SMolar  float64 `json:"s_molar"`  // J/mol-K

	// Mass-specific properties, scaled by the species gas constant. This
	// rescales the same dimensionless ratios by R = Ru/M rather than
	// dividing the molar values by molar mass.
	CpSpecific float64 `json:"cp_specific"` // J/kg-K
	HSpecific  float64 `json:"h_specific"`  // J/kg
	SSpecific  float64 `json:"s_specific"`  // J/kg-K
}

// Model evaluates the NASA 7-term polynomial over a species' temperature
// intervals. Models are immutable after construction and safe for
// concurrent use.
type Model struct {
	intervals []thermoinp.TemperatureInterval
	tmin      float64
	tmax      float64
	ru        float64 // molar gas constant, J/mol-K
	r         float64 // species-specific gas constant, J/kg-K
}

// NewModel builds a Model over the given intervals. Intervals must be
// non-empty, ordered by ascending lower bound and contiguous; this is the
// shape the thermoinp parser produces for any well-formed record.
func NewModel(intervals []thermoinp.TemperatureInterval, ru, r float64) *Model {
	return &Model{
		intervals: intervals,
		tmin:      intervals[0].Tmin,
		tmax:      intervals[len(intervals)-1].Tmax,
		ru:        ru,
		r:         r,
	}
}

// Bounds returns the model's validity bounds: the first interval's lower
// bound and the last interval's upper bound.
func (m *Model) Bounds() (tmin, tmax float64) {
	return m.tmin, m.tmax
}

// Intervals returns the model's temperature intervals.
func (m *Model) Intervals() []thermoinp.TemperatureInterval {
	return m.intervals
}

// Evaluate computes the property snapshot at temperature T. It fails with
// an *OutOfRangeError when T lies outside the validity bounds; it never
// extrapolates.
func (m *Model) Evaluate(T float64) (Properties, error) {
	iv, err := m.selectInterval(T)
	if err != nil {
		return Properties{}, err
	}

	a := &iv.Coefficients
	b1, b2 := iv.IntegrationConstants[0], iv.IntegrationConstants[1]
	cp := dimlessHeatCapacity(T, a)
	h := dimlessEnthalpy(T, a, b1)
	s := dimlessEntropy(T, a, b2)

	return Properties{
		T:          T,
		CpND:       cp,
		HND:        h,
		SND:        s,
		CpMolar:    cp * m.ru,
		HMolar:     h * m.ru * T,
		SMolar:     s * m.ru,
		CpSpecific: cp * m.r,
		HSpecific:  h * m.r * T,
		SSpecific:  s * m.r,
	}, nil
}

// selectInterval picks the first interval whose upper bound exceeds T,
// scanning in ascending order. Every interior interval is half-open
// [Tmin, Tmax); the last interval is closed so that T equal to the overall
// upper bound still resolves rather than falling off the end.
func (m *Model) selectInterval(T float64) (*thermoinp.TemperatureInterval, error) {
	if T < m.tmin || T > m.tmax {
		return nil, &OutOfRangeError{T: T, Min: m.tmin, Max: m.tmax}
	}
	for i := range m.intervals {
		if T < m.intervals[i].Tmax {
			return &m.intervals[i], nil
		}
	}
	return &m.intervals[len(m.intervals)-1], nil
}

// The NASA 7-term polynomial form with coefficients a1..a7 aligned to the
// exponent set {-2,-1,0,1,2,3,4} and integration constants b1, b2:
//
//	Cp/Ru    = a1/T^2 + a2/T + a3 + a4*T + a5*T^2 + a6*T^3 + a7*T^4
//	H/(Ru*T) = -a1/T^2 + (a2*lnT + b1)/T + a3 + a4*T/2 + a5*T^2/3
//	           + a6*T^3/4 + a7*T^4/5
//	S/Ru     = -a1/T^2/2 - a2/T + a3*lnT + b2 + a4*T + a5*T^2/2
//	           + a6*T^3/3 + a7*T^4/4

func dimlessHeatCapacity(T float64, a *[7]float64) float64 {
	return a[0]/(T*T) +
		a[1]/T +
		a[2] +
		a[3]*T +
		a[4]*T*T +
		a[5]*T*T*T +
		a[6]*T*T*T*T
}

func dimlessEnthalpy(T float64, a *[7]float64, b1 float64) float64 {
	return -a[0]/(T*T) +
		(a[1]*math.Log(T)+b1)/T +
		a[2] +
		a[3]*T/2 +
		a[4]*T*T/3 +
		a[5]*T*T*T/4 +
		a[6]*T*T*T*T/5
}

func dimlessEntropy(T float64, a *[7]float64, b2 float64) float64 {
	return -a[0]/(T*T)/2 -
		a[1]/T +
		a[2]*math.Log(T) + b2 +
		a[3]*T +
		a[4]*T*T/2 +
		a[5]*T*T*T/3 +
		a[6]*T*T*T*T/4
}
