// Package queue defines message payloads exchanged over the message broker.
package queue

// RentalOpenedEvent is published when a checkout succeeds. It carries
// enough display information for downstream consumers to log or notify
// without querying the primary database.
type RentalOpenedEvent struct {
	RentalID     uint64 `json:"rental_id"`
	InventoryID  uint64 `json:"inventory_id"`
	FilmID       uint64 `json:"film_id"`
	FilmTitle    string `json:"film_title"`
	CustomerID   uint64 `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	StaffID      uint64 `json:"staff_id"`
	RentalDate   string `json:"rental_date"`
}

// RentalClosedEvent is published when an open rental is returned.
type RentalClosedEvent struct {
	RentalID    uint64 `json:"rental_id"`
	InventoryID uint64 `json:"inventory_id"`
	CustomerID  uint64 `json:"customer_id"`
	ReturnDate  string `json:"return_date"`
}
