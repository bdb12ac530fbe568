package intervals

import "math"

// Event describes one entry from the athlete's events endpoint. Only the
// name matters for the day summary; the remaining fields mirror the API
// schema for callers that want them.
type Event struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	StartDateLocal string `json:"start_date_local"`
}

// Wellness mirrors the numeric fields of the per-day wellness endpoint.
// The API reports fractional values for the training-load fields; absent
// fields decode to zero.
type Wellness struct {
	CTL        float64 `json:"ctl"`
	ATL        float64 `json:"atl"`
	RampRate   float64 `json:"rampRate"`
	RestingHR  float64 `json:"restingHR"`
	HRV        float64 `json:"hrv"`
	SleepScore float64 `json:"sleepScore"`
	Steps      float64 `json:"steps"`
}

// DailyStats is the derived view of one day's wellness record as shown to
// the user. Integer fields are truncated from the source values; Form and
// RampRate keep two decimals.
type DailyStats struct {
	CTL        int
	ATL        int
	Form       float64
	RampRate   float64
	RestingHR  int
	HRV        int
	SleepScore int
	Steps      int
	Activity   string
}

// Daily derives the display stats from a wellness record.
func (w Wellness) Daily() DailyStats {
	ctl := int(w.CTL)
	atl := int(w.ATL)
	return DailyStats{
		CTL:        ctl,
		ATL:        atl,
		Form:       round2(float64(ctl - atl)),
		RampRate:   round2(w.RampRate),
		RestingHR:  int(w.RestingHR),
		HRV:        int(w.HRV),
		SleepScore: int(w.SleepScore),
		Steps:      int(w.Steps),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
