package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Fraction returns Current/Max in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
