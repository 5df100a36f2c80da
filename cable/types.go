// SPDX-License-Identifier: MIT

package cable

import (
	"math"
	"math/cmplx"

	"github.com/shopspring/decimal"
)

// DefaultLineFrequencyHz is the North American grid frequency.
const DefaultLineFrequencyHz = 60.0

// Spec is one raw catalog row.
type Spec struct {
	Name               string  `json:"name" yaml:"name"`
	AmpacityA          float64 `json:"ampacity_a" yaml:"ampacity_a"`
	RatedVoltageV      float64 `json:"rated_voltage_v" yaml:"rated_voltage_v"`
	ResistanceOhmPerKm float64 `json:"resistance_ohm_per_km" yaml:"resistance_ohm_per_km"`
	InductanceMHPerKm  float64 `json:"inductance_mh_per_km" yaml:"inductance_mh_per_km"`
	CapacitanceNFPerKm float64 `json:"capacitance_nf_per_km" yaml:"capacitance_nf_per_km"`
	CostUSDPerM        float64 `json:"cost_usd_per_m" yaml:"cost_usd_per_m"`
}

// Type is a Spec with its derived electrical properties. Read-only once built.
type Type struct {
	Spec
	// ImpedanceRe and ImpedanceIm are the characteristic impedance, Ω.
	ImpedanceRe float64 `json:"impedance_re_ohm"`
	ImpedanceIm float64 `json:"impedance_im_ohm"`
	PowerFactor float64 `json:"power_factor"`
	// MaxPowerMW is the maximum 3-phase real power transfer.
	MaxPowerMW float64 `json:"max_power_mw"`
	// CostPerM is CostUSDPerM as an exact decimal.
	CostPerM decimal.Decimal `json:"-"`
}

// NewType validates spec and derives impedance, power factor and transfer capacity.
//
// Error Conditions:
//   - ErrInvalidFrequency: f ≤ 0 or not finite.
//   - ErrInvalidCable: empty name; ampacity, voltage or resistance ≤ 0; negative
//     inductance, capacitance or cost; any non-finite field.
//
// Complexity: O(1).
func NewType(spec Spec, lineFrequencyHz float64) (Type, error) {
	if !(lineFrequencyHz > 0) || math.IsInf(lineFrequencyHz, 0) {
		return Type{}, ErrInvalidFrequency
	}
	if err := validateSpec(spec); err != nil {
		return Type{}, err
	}

	z := characteristicImpedance(spec, lineFrequencyHz)
	pf := math.Cos(math.Atan(imag(z) / real(z)))

	return Type{
		Spec:        spec,
		ImpedanceRe: real(z),
		ImpedanceIm: imag(z),
		PowerFactor: pf,
		MaxPowerMW:  math.Sqrt(3) * spec.RatedVoltageV * spec.AmpacityA * pf / 1e6,
		CostPerM:    decimal.NewFromFloat(spec.CostUSDPerM),
	}, nil
}

// characteristicImpedance evaluates sqrt((R + jωL) / (G + jωC)) with G = 1/R.
func characteristicImpedance(spec Spec, f float64) complex128 {
	omega := 2 * math.Pi * f
	r := spec.ResistanceOhmPerKm
	l := spec.InductanceMHPerKm * 1e-3  // H/km
	c := spec.CapacitanceNFPerKm * 1e-9 // F/km

	num := complex(r, omega*l)
	den := complex(1/r, omega*c)

	return cmplx.Sqrt(num / den)
}

func validateSpec(s Spec) error {
	if s.Name == "" {
		return invalidCable(s.Name, "empty name")
	}
	for _, v := range []float64{
		s.AmpacityA, s.RatedVoltageV, s.ResistanceOhmPerKm,
		s.InductanceMHPerKm, s.CapacitanceNFPerKm, s.CostUSDPerM,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidCable(s.Name, "non-finite field")
		}
	}
	switch {
	case s.AmpacityA <= 0:
		return invalidCable(s.Name, "ampacity must be > 0")
	case s.RatedVoltageV <= 0:
		return invalidCable(s.Name, "rated voltage must be > 0")
	case s.ResistanceOhmPerKm <= 0:
		return invalidCable(s.Name, "resistance must be > 0")
	case s.InductanceMHPerKm < 0, s.CapacitanceNFPerKm < 0:
		return invalidCable(s.Name, "inductance and capacitance must be >= 0")
	case s.CostUSDPerM < 0:
		return invalidCable(s.Name, "cost must be >= 0")
	}

	return nil
}

// Impedance returns the characteristic impedance as a complex number.
func (t Type) Impedance() complex128 { return complex(t.ImpedanceRe, t.ImpedanceIm) }

// MaxUnits returns how many units of ratingMW one cable of this type can serve.
// Returns 0 for a non-positive rating.
func (t Type) MaxUnits(ratingMW float64) int {
	if ratingMW <= 0 {
		return 0
	}

	return int(math.Floor(t.MaxPowerMW / ratingMW))
}

// Carries reports whether the type can transfer mw.
func (t Type) Carries(mw float64) bool { return t.MaxPowerMW >= mw }
