package valueobjects

type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}
