package catalog

import "strconv"

// RoomDetail holds the recorded equipment for a numbered room. An empty
// field means "not recorded", not "none".
type RoomDetail struct {
	Headboard string
	TV        string
	Safe      string
}

type detailTable map[string]RoomDetail

// merge overwrites only the fields the incoming detail actually sets, so a
// later rule can change one field without clearing the others
func (d RoomDetail) merge(o RoomDetail) RoomDetail {
	if o.Headboard != "" {
		d.Headboard = o.Headboard
	}
	if o.TV != "" {
		d.TV = o.TV
	}
	if o.Safe != "" {
		d.Safe = o.Safe
	}
	return d
}

func (t detailTable) setSingle(room int, d RoomDetail) {
	key := strconv.Itoa(room)
	t[key] = t[key].merge(d)
}

func (t detailTable) setRange(start, end int, d RoomDetail) {
	for room := start; room <= end; room++ {
		t.setSingle(room, d)
	}
}

// roomDetails maps room number to its recorded equipment. The table is
// immutable after init: rules apply in a fixed order (base ranges, then
// single-room exceptions, then the floor-wide 05-08 headboard pass) and
// later rules always win over earlier ones for the same field.
var roomDetails = buildRoomDetails()

func buildRoomDetails() detailTable {
	t := make(detailTable)

	// Floor 1
	t.setSingle(101, RoomDetail{Headboard: "Baldosa", Safe: "modelo Ibiza"})
	t.setSingle(102, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(103, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(104, RoomDetail{TV: "Toshiba", Safe: "Blanca"})
	t.setSingle(105, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(106, RoomDetail{Safe: "Negra"})
	t.setSingle(107, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(108, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(109, RoomDetail{TV: "Toshiba", Safe: "Blanca"})
	t.setRange(110, 125, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(126, RoomDetail{Headboard: "Baldosa", TV: "Android (Engel)", Safe: "Blanca"})
	t.setRange(127, 135, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})

	// Floor 2
	t.setSingle(201, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setRange(202, 203, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(204, RoomDetail{Headboard: "Tela", Safe: "Negra"})
	t.setRange(205, 208, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setRange(209, 220, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(221, RoomDetail{Headboard: "Tela", TV: "Samsung", Safe: "Blanca"})
	t.setRange(222, 235, RoomDetail{Headboard: "Tela", Safe: "Blanca"})

	// Floor 3
	t.setRange(301, 304, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setRange(305, 308, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setRange(309, 318, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(319, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setRange(320, 331, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(332, RoomDetail{Headboard: "Tela", TV: "NO PIN", Safe: "Blanca"})
	t.setSingle(333, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(334, RoomDetail{Headboard: "Tela", TV: "NO PIN", Safe: "Blanca"})
	t.setSingle(335, RoomDetail{Headboard: "Tela", Safe: "Blanca"})

	// Floor 4
	t.setRange(401, 404, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setRange(405, 408, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setRange(409, 421, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(422, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setRange(423, 431, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(432, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setRange(433, 435, RoomDetail{Headboard: "Tela", Safe: "Blanca"})

	// Floor 5
	t.setRange(501, 504, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setRange(505, 508, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(509, RoomDetail{Headboard: "Baldosa", Safe: "Negra"})
	t.setSingle(510, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(511, RoomDetail{Headboard: "Baldosa", Safe: "modelo Ibiza"})
	t.setRange(512, 519, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(520, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(521, 535, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})

	// Floor 6
	t.setSingle(601, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(602, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(603, 604, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(605, RoomDetail{Safe: "Negra"})
	t.setSingle(606, RoomDetail{TV: "Smart", Safe: "sin cofre"})
	t.setRange(607, 608, RoomDetail{Safe: "Negra"})
	t.setSingle(609, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(610, 616, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(617, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(618, 632, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(633, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setRange(634, 635, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})

	// Floor 7
	t.setRange(701, 704, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setRange(705, 708, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(709, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setRange(710, 711, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setRange(712, 733, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(734, RoomDetail{Headboard: "Tela", TV: "Smart", Safe: "Blanca"})
	t.setSingle(735, RoomDetail{Headboard: "Tela", Safe: "Blanca"})

	// Floor 8
	t.setSingle(801, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(802, RoomDetail{Headboard: "Tela", TV: "No funciona (samsung)", Safe: "Blanca"})
	t.setRange(803, 804, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(805, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(806, RoomDetail{Safe: "Negra"})
	t.setSingle(807, RoomDetail{TV: "Smart", Safe: "Negra"})
	t.setSingle(808, RoomDetail{Safe: "Negra"})
	t.setRange(809, 820, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(821, RoomDetail{Headboard: "Tela", Safe: "modelo Ibiza"})
	t.setRange(822, 826, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(827, RoomDetail{Headboard: "Tela", TV: "Android (Engel)", Safe: "Blanca"})
	t.setRange(828, 833, RoomDetail{Headboard: "Tela", Safe: "Blanca"})
	t.setSingle(834, RoomDetail{Headboard: "Tela", TV: "Hisense dif", Safe: "Blanca"})
	t.setSingle(835, RoomDetail{Headboard: "Tela", Safe: "Blanca"})

	// Floor 9
	t.setRange(901, 904, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setRange(905, 908, RoomDetail{Safe: "Negra"})
	t.setRange(909, 914, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(915, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(916, 932, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})
	t.setSingle(933, RoomDetail{Headboard: "Baldosa", TV: "Smart", Safe: "Blanca"})
	t.setRange(934, 935, RoomDetail{Headboard: "Baldosa", Safe: "Blanca"})

	// Rooms 05-08 carry the green wallpaper headboard on every floor. This
	// pass runs last and unconditionally overwrites any headboard assigned
	// above for those rooms.
	for floor := MinFloor; floor <= MaxFloor; floor++ {
		for _, suffix := range []string{"05", "06", "07", "08"} {
			key := RoomNumber(floor, suffix)
			d := t[key]
			d.Headboard = "Papel pintado verde"
			t[key] = d
		}
	}

	return t
}

// DetailFor returns the recorded equipment for a room number, or the zero
// detail if nothing was recorded for it
func DetailFor(number string) RoomDetail {
	return roomDetails[number]
}
