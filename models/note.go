package models

import "time"

// Note is the single persisted entity of the application: a short text record
// with creation/update timestamps and an optional geographic coordinate
// captured at edit time.
//
// ID is a surrogate key assigned by the store on first insert; the zero value
// means the note has not been persisted yet. CreatedAt and UpdatedAt are
// milliseconds since the Unix epoch. Latitude and Longitude are either both
// set or both nil; the service layer validates this before any write.
type Note struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// NewNote returns an unpersisted note with both timestamps set to the current
// time. Insert keeps these values, so UpdatedAt == CreatedAt right after
// creation.
func NewNote(title, content string) Note {
	now := Now()
	return Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Now returns the current wall-clock time in milliseconds since the Unix
// epoch, the resolution every Note timestamp is stored with.
func Now() int64 {
	return time.Now().UnixMilli()
}

// HasCoordinate reports whether the note carries a complete coordinate.
func (n Note) HasCoordinate() bool {
	return n.Latitude != nil && n.Longitude != nil
}

// Coordinate returns the attached coordinate. The second return value is
// false when the note has none.
func (n Note) Coordinate() (Coordinate, bool) {
	if !n.HasCoordinate() {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *n.Latitude, Longitude: *n.Longitude}, true
}

// SetCoordinate attaches c to the note, replacing any previous coordinate.
func (n *Note) SetCoordinate(c Coordinate) {
	lat, lon := c.Latitude, c.Longitude
	n.Latitude = &lat
	n.Longitude = &lon
}

// ClearCoordinate removes the coordinate from the note.
func (n *Note) ClearCoordinate() {
	n.Latitude = nil
	n.Longitude = nil
}
