package model

// Rental records one checkout of an inventory unit by a customer.  A
// rental is open while ReturnDate is nil and closed once it is set; a
// closed rental's return date is never earlier than its rental date.
//
// Fields:
//  RentalID    – primary key identifier.
//  RentalDate  – checkout timestamp, "YYYY-MM-DD HH:MM:SS" (UTC).
//  InventoryID – the physical copy that was taken.
//  CustomerID  – borrower.
//  ReturnDate  – return timestamp, nil while the copy is out.
//  StaffID     – staff member who processed the checkout.
type Rental struct {
	RentalID    uint64  `json:"rental_id"`    // rental.rental_id
	RentalDate  string  `json:"rental_date"`  // rental.rental_date
	InventoryID uint64  `json:"inventory_id"` // rental.inventory_id
	CustomerID  uint64  `json:"customer_id"`  // rental.customer_id
	ReturnDate  *string `json:"return_date"`  // rental.return_date (nullable)
	StaffID     uint64  `json:"staff_id"`     // rental.staff_id
}
