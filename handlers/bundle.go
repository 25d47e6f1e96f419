package handlers

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	Booking *BookingHandler
	Contact *ContactHandler
	Lead    *LeadHandler
	Chat    *ChatHandler
	Catalog *CatalogHandler
}
