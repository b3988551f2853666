package model

// Inventory is one physical, rentable copy of a film held at a store.
//
// Fields:
//  InventoryID – primary key identifier.
//  FilmID      – the title this copy is of.
//  StoreID     – the store holding the copy.
type Inventory struct {
	InventoryID uint64 `json:"inventory_id"` // inventory.inventory_id
	FilmID      uint64 `json:"film_id"`      // inventory.film_id
	StoreID     uint64 `json:"store_id"`     // inventory.store_id
}
