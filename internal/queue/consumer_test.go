package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLineOpened(t *testing.T) {
	body, err := json.Marshal(RentalOpenedEvent{
		RentalID:     16050,
		InventoryID:  367,
		FilmID:       80,
		FilmTitle:    "BLANKET BEVERLY",
		CustomerID:   130,
		CustomerName: "CHARLOTTE HUNTER",
		StaffID:      1,
		RentalDate:   "2005-05-24 22:53:30",
	})
	require.NoError(t, err)

	line, err := formatLine("rental.opened", body)
	require.NoError(t, err)
	assert.Equal(t,
		"[2005-05-24 22:53:30] Rental opened | rental_id=16050 | inventory_id=367 | film=\"BLANKET BEVERLY\" | customer=\"CHARLOTTE HUNTER\" | staff_id=1\n",
		line)
}

func TestFormatLineClosed(t *testing.T) {
	body, err := json.Marshal(RentalClosedEvent{
		RentalID:    16050,
		InventoryID: 367,
		CustomerID:  130,
		ReturnDate:  "2005-05-26 22:04:30",
	})
	require.NoError(t, err)

	line, err := formatLine("rental.closed", body)
	require.NoError(t, err)
	assert.Equal(t,
		"[2005-05-26 22:04:30] Rental closed | rental_id=16050 | inventory_id=367 | customer_id=130\n",
		line)
}

func TestFormatLineUnknownRoutingKey(t *testing.T) {
	_, err := formatLine("rental.lost", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rental.lost")
}

func TestFormatLineRejectsMalformedPayload(t *testing.T) {
	_, err := formatLine("rental.opened", []byte(`{not json`))
	require.Error(t, err)
}
