package reservation

type Status string

const (
	StatusUnconfirmed Status = "unconfirmed"
	StatusConfirmed   Status = "confirmed"
	StatusPaid        Status = "paid"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnconfirmed, StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// OccupiesRoom reports whether a reservation in this status claims its rooms.
func (s Status) OccupiesRoom() bool {
	switch s {
	case StatusUnconfirmed, StatusConfirmed, StatusPaid:
		return true
	default:
		return false
	}
}

// OccupyingStatuses lists every status for which OccupiesRoom is true.
func OccupyingStatuses() []Status {
	return []Status{StatusUnconfirmed, StatusConfirmed, StatusPaid}
}

type Channel string

const (
	ChannelHotel    Channel = "hotel"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelWeb      Channel = "web"
	ChannelPhone    Channel = "phone"
	ChannelOther    Channel = "other"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelHotel, ChannelWhatsApp, ChannelWeb, ChannelPhone, ChannelOther:
		return true
	default:
		return false
	}
}

// Occupancy tracks the guest's physical stay, independent of Status.
type Occupancy string

const (
	OccupancyNone       Occupancy = ""
	OccupancyPreArrival Occupancy = "pre-arrival"
	OccupancyCheckIn    Occupancy = "check-in"
	OccupancyCheckOut   Occupancy = "check-out"
)

func (o Occupancy) IsValid() bool {
	switch o {
	case OccupancyNone, OccupancyPreArrival, OccupancyCheckIn, OccupancyCheckOut:
		return true
	default:
		return false
	}
}

// HasArrived is true once the guest has checked in, including after checkout.
func (o Occupancy) HasArrived() bool {
	return o == OccupancyCheckIn || o == OccupancyCheckOut
}
