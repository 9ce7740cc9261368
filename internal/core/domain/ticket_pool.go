package domain

// TicketPool tracks admission for one event. 0 <= BookedQuantity <= TotalCapacity.
type TicketPool struct {
	EventID        int64 `json:"event_id"`
	TotalCapacity  int   `json:"total_capacity"`
	BookedQuantity int   `json:"booked_quantity"`
}

func (p TicketPool) Available() int {
	return p.TotalCapacity - p.BookedQuantity
}
