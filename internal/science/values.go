package science

import (
	"fmt"
	"math"
	"strconv"
)

// RecoveryValue is the flat worth of a recovered flight. The game scales it by
// the zones crossed during the flight, which this table does not track.
const RecoveryValue = 5

type Values struct {
	Recover     float64 `json:"recover"`
	Transmit    float64 `json:"transmit"`
	TransmitLab float64 `json:"transmit_lab"`
	Base        float64 `json:"base"`
	Multiplier  float64 `json:"multiplier"`
}

// Values computes the point values of test on body within cat.
func (c *Catalog) Values(body string, cat ZoneCategory, test Test) (Values, error) {
	if test == TestRecovery {
		return Values{
			Recover:     RecoveryValue,
			Transmit:    RecoveryValue,
			TransmitLab: RecoveryValue,
			Base:        RecoveryValue,
			Multiplier:  1,
		}, nil
	}
	spec, err := c.TestSpec(test)
	if err != nil {
		return Values{}, err
	}
	m, err := c.Multiplier(body, cat)
	if err != nil {
		return Values{}, err
	}
	if !m.Applicable {
		return Values{}, fmt.Errorf("body %s category %s: %w", body, cat, ErrMultiplierNotApplicable)
	}
	value := spec.BasePoints * m.Factor
	return Values{
		Recover:     value,
		Transmit:    value * spec.TransmitRate / 100,
		TransmitLab: value * (spec.TransmitRate + spec.LabBonus) / 100,
		Base:        spec.BasePoints,
		Multiplier:  m.Factor,
	}, nil
}

// FormatValue prints near-integers (fraction <= 0.05) as a truncated integer
// and everything else with one decimal.
func FormatValue(v float64) string {
	whole := math.Floor(v)
	if v-whole <= 0.05 {
		return strconv.FormatInt(int64(whole), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
