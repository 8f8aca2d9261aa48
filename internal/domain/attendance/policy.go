package attendance

import "time"

// OfficeLocation is the center of the geofence.
type OfficeLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// Coordinate is a submitted GPS position.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Policy holds the geofence and time-window rules. It is a value type and is
// copied into the service at construction.
type Policy struct {
	Office             OfficeLocation
	MaxDistanceMeters  int
	CheckInOpenHour    int
	CheckInGraceMinute int
	CheckOutOpenHour   int
}

// DefaultPolicy returns the rules of the PT Pupuk Iskandar Muda office.
func DefaultPolicy() Policy {
	return Policy{
		Office: OfficeLocation{
			Latitude:  5.194133,
			Longitude: 97.017938,
			Name:      "PT Pupuk Iskandar Muda",
		},
		MaxDistanceMeters:  50,
		CheckInOpenHour:    8,
		CheckInGraceMinute: 15,
		CheckOutOpenHour:   17,
	}
}

// CheckInOpen reports whether check-in is allowed at civil time t.
func (p Policy) CheckInOpen(t time.Time) bool {
	return t.Hour() >= p.CheckInOpenHour
}

// CheckOutOpen reports whether check-out is allowed at civil time t.
func (p Policy) CheckOutOpen(t time.Time) bool {
	return t.Hour() >= p.CheckOutOpenHour
}

// IsLate reports whether a check-in at civil time t is past the grace window.
// The hour comparison takes precedence: 09:00 is late even though its minute
// is inside the grace minutes.
func (p Policy) IsLate(t time.Time) bool {
	return t.Hour() > p.CheckInOpenHour ||
		(t.Hour() == p.CheckInOpenHour && t.Minute() > p.CheckInGraceMinute)
}

// StatusAt returns the check-in status for civil time t.
func (p Policy) StatusAt(t time.Time) Status {
	if p.IsLate(t) {
		return StatusLate
	}
	return StatusPresent
}
