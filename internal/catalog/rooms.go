package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"hotel-floor-dashboard/internal/models"
)

// Floors covered by the building
const (
	MinFloor = 1
	MaxFloor = 9
)

// ErrFloorOutOfRange is returned by FloorRooms for floors outside [MinFloor, MaxFloor]
var ErrFloorOutOfRange = errors.New("floor number out of range")

// FloorLayout partitions a floor's slots into the three display groups of
// the floor plan
type FloorLayout struct {
	Top   []models.Room `json:"topRooms"`
	Left  []models.Room `json:"leftRooms"`
	Right []models.Room `json:"rightRooms"`
}

// RoomNumber formats the canonical room identifier: floor digit followed by
// the zero-padded two-digit suffix. The catalog and both stores join on this
// exact string, so nothing else may recompute the format.
func RoomNumber(floor int, suffix string) string {
	for len(suffix) < 2 {
		suffix = "0" + suffix
	}
	return strconv.Itoa(floor) + suffix
}

// isAccessible reproduces the building's accessibility rule exactly:
// floors 1-2 suffixes 25/26, floors 3-9 suffix 26.
func isAccessible(floor, suffix int) bool {
	if floor == 1 && (suffix == 25 || suffix == 26) {
		return true
	}
	if floor == 2 && (suffix == 25 || suffix == 26) {
		return true
	}
	if floor >= 3 && floor <= 9 && suffix == 26 {
		return true
	}
	return false
}

func newRoom(floor int, suffix string, roomType models.RoomType) models.Room {
	number := RoomNumber(floor, suffix)
	detail := DetailFor(number)
	numSuffix, _ := strconv.Atoi(suffix)

	return models.Room{
		ID:           number,
		Number:       number,
		Type:         roomType,
		IsAccessible: isAccessible(floor, numSuffix),
		HasTerrace:   floor == 1 && numSuffix >= 16 && numSuffix <= 25,
		Headboard:    detail.Headboard,
		TV:           detail.TV,
		Safe:         detail.Safe,
	}
}

// newServiceUnit builds a non-guest slot (corridor, elevator, office). The
// floor is encoded into the id to keep service units unique building-wide;
// they carry no number, equipment, or accessibility data.
func newServiceUnit(floor int, tag, label string) models.Room {
	return models.Room{
		ID:    fmt.Sprintf("%s-%d", tag, floor),
		Type:  models.RoomTypeService,
		Label: label,
	}
}

// premiumOrSuite returns the type of the two corner rooms that are junior
// suites on floor 1 and premium rooms everywhere else
func premiumOrSuite(floor int) models.RoomType {
	if floor == 1 {
		return models.RoomTypeJuniorSuite
	}
	return models.RoomTypePremium
}

// FloorRooms returns the fixed slot layout for a floor, partitioned into the
// three display groups. The output is deterministic: the same floor always
// yields the same rooms in the same order.
func FloorRooms(floor int) (FloorLayout, error) {
	if floor < MinFloor || floor > MaxFloor {
		return FloorLayout{}, fmt.Errorf("%w: %d", ErrFloorOutOfRange, floor)
	}

	top := []models.Room{
		newRoom(floor, "07", models.RoomTypePVM),
		newRoom(floor, "06", models.RoomTypePVM),
	}

	left := []models.Room{
		newRoom(floor, "08", models.RoomTypePVM),
		newRoom(floor, "09", premiumOrSuite(floor)),
		newRoom(floor, "10", models.RoomTypePremium),
		newRoom(floor, "11", models.RoomTypePremium),
		newRoom(floor, "12", models.RoomTypePremium),
		newRoom(floor, "13", models.RoomTypeStandard),
		newRoom(floor, "14", models.RoomTypeStandard),
		newRoom(floor, "15", models.RoomTypeStandard),
		newRoom(floor, "16", models.RoomTypeStandard),
		newRoom(floor, "17", models.RoomTypeStandard),
		newRoom(floor, "18", models.RoomTypeStandard),
		newRoom(floor, "19", models.RoomTypeStandard),
		newRoom(floor, "20", models.RoomTypeStandard),
		newRoom(floor, "21", models.RoomTypeStandard),
		newRoom(floor, "22", models.RoomTypeStandard),
		newRoom(floor, "23", models.RoomTypeStandard),
		newRoom(floor, "24", models.RoomTypeStandard),
		newRoom(floor, "25", models.RoomTypeStandard),
	}

	right := []models.Room{
		newRoom(floor, "05", models.RoomTypePVM),
		newRoom(floor, "04", premiumOrSuite(floor)),
		newRoom(floor, "03", models.RoomTypePremium),
		newRoom(floor, "02", models.RoomTypePremium),
		newRoom(floor, "01", models.RoomTypePremium),
		newServiceUnit(floor, "pasillo", "PASILLO"),
		newServiceUnit(floor, "ascensor", "ASCENSOR"),
		newServiceUnit(floor, "office", "OFFICE"),
		newRoom(floor, "35", models.RoomTypeStandard),
		newRoom(floor, "34", models.RoomTypeStandard),
		newRoom(floor, "33", models.RoomTypeStandard),
		newRoom(floor, "32", models.RoomTypeStandard),
		newRoom(floor, "31", models.RoomTypeStandard),
		newRoom(floor, "30", models.RoomTypeStandard),
		newRoom(floor, "29", models.RoomTypeStandard),
		newRoom(floor, "28", models.RoomTypeStandard),
		newRoom(floor, "27", models.RoomTypeStandard),
		newRoom(floor, "26", models.RoomTypeStandard),
	}

	return FloorLayout{Top: top, Left: left, Right: right}, nil
}
