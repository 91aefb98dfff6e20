package models

// RoomType classifies a slot on the floor plan
type RoomType string

const (
	RoomTypePVM         RoomType = "PVM"
	RoomTypePremium     RoomType = "PREMIUM"
	RoomTypeStandard    RoomType = "STANDARD"
	RoomTypeJuniorSuite RoomType = "JUNIOR SUITE"
	RoomTypeService     RoomType = "SERVICE"
)

// BedPosition is the orientation override for a room's bed, independent of
// the default derived from the room's display group
type BedPosition string

const (
	BedPositionTop    BedPosition = "top"
	BedPositionBottom BedPosition = "bottom"
	BedPositionLeft   BedPosition = "left"
	BedPositionRight  BedPosition = "right"
)

// ValidBedPosition reports whether p is one of the four allowed values
func ValidBedPosition(p BedPosition) bool {
	switch p {
	case BedPositionTop, BedPositionBottom, BedPositionLeft, BedPositionRight:
		return true
	}
	return false
}

// Room represents one slot on a floor plan: either a numbered guest room or
// a service unit (corridor, elevator, office). Rooms are reference data,
// immutable once built for a floor.
type Room struct {
	ID           string   `json:"id"`
	Number       string   `json:"number"`
	Type         RoomType `json:"type"`
	IsAccessible bool     `json:"isAccessible"`
	HasTerrace   bool     `json:"hasTerrace"`
	Label        string   `json:"label,omitempty"`
	Headboard    string   `json:"headboard,omitempty"`
	TV           string   `json:"tv,omitempty"`
	Safe         string   `json:"safe,omitempty"`
}

// RoomConfig holds per-room overrides. The zero value means "no override":
// an empty BedPosition is distinct from any of the four real positions and
// falls back to the room's display-group default.
type RoomConfig struct {
	BedPosition BedPosition `json:"bedPosition,omitempty"`
}
