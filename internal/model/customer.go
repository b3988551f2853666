package model

// Customer is a registered borrower attached to one store and one
// address.  Customers are the only entity besides rentals that this
// service mutates.
//
// Fields:
//  CustomerID – primary key identifier.
//  StoreID    – store the customer signed up at.
//  FirstName  – given name.
//  LastName   – family name.
//  Email      – contact address (nullable).
//  AddressID  – postal address reference.
//  Active     – soft-delete / standing flag.
//  CreateDate – when the customer registered, "YYYY-MM-DD HH:MM:SS" (UTC).
//  LastUpdate – row timestamp, same format.
type Customer struct {
	CustomerID uint64  `json:"customer_id"` // customer.customer_id
	StoreID    uint64  `json:"store_id"`    // customer.store_id
	FirstName  string  `json:"first_name"`  // customer.first_name
	LastName   string  `json:"last_name"`   // customer.last_name
	Email      *string `json:"email"`       // customer.email (nullable)
	AddressID  uint64  `json:"address_id"`  // customer.address_id
	Active     bool    `json:"active"`      // customer.active
	CreateDate string  `json:"create_date"` // customer.create_date
	LastUpdate string  `json:"last_update"` // customer.last_update
}
