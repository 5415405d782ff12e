package expiry

import (
	"math"
	"time"
)

const (
	StatusFresh      = "fresh"
	StatusNearExpiry = "near-expiry"
	StatusExpired    = "expired"
)

// Items within this many days of predicted expiry classify as near-expiry.
const nearExpiryWindowDays = 3

type SensorData struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	PH          *float64 `json:"ph,omitempty"`
}

// PredictExpiry shifts the declared expiry date earlier by a penalty derived
// from environmental sensor readings. Without sensor data the declared date
// is returned unchanged. The result never lands after the declared date.
func PredictExpiry(declaredDate time.Time, sensor *SensorData) time.Time {
	if sensor == nil {
		return declaredDate
	}

	predicted := declaredDate.AddDate(0, 0, -penaltyDays(sensor))
	if predicted.After(declaredDate) {
		return declaredDate
	}

	return predicted
}

func penaltyDays(sensor *SensorData) int {
	penalty := 0

	// Ideal storage is 0-7 degrees C for most fresh foods.
	if sensor.Temperature != nil {
		switch t := *sensor.Temperature; {
		case t > 25:
			penalty += 5
		case t > 15:
			penalty += 3
		case t > 10:
			penalty += 1
		}
	}

	// Ideal humidity is 50-70%; too humid risks mold, too dry dehydrates.
	if sensor.Humidity != nil {
		switch h := *sensor.Humidity; {
		case h > 85:
			penalty += 4
		case h > 75:
			penalty += 2
		case h < 30:
			penalty += 1
		}
	}

	// Ideal pH is 6.0-7.0 for most foods.
	if sensor.PH != nil {
		switch diff := math.Abs(*sensor.PH - 6.5); {
		case diff > 2:
			penalty += 3
		case diff > 1:
			penalty += 1
		}
	}

	return penalty
}

// Classify returns the freshness band of an expiry date relative to the
// current day. It is derived on every read and must never be persisted.
func Classify(expiryDate time.Time) string {
	return ClassifyAt(expiryDate, time.Now())
}

// ClassifyAt compares both dates at day granularity: partial days do not
// count, and the difference rounds up to whole days.
func ClassifyAt(expiryDate, today time.Time) string {
	days := DaysUntil(expiryDate, today)

	switch {
	case days < 0:
		return StatusExpired
	case days <= nearExpiryWindowDays:
		return StatusNearExpiry
	default:
		return StatusFresh
	}
}

// DaysUntil returns the number of whole calendar days from today until the
// expiry date, with both truncated to midnight and partial days rounded up.
func DaysUntil(expiryDate, today time.Time) int {
	expiry := truncateToDay(expiryDate)
	now := truncateToDay(today)

	diff := expiry.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
