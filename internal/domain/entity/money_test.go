package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backup files are produced by MarshalJSON and read back with the standard
// decoder, so every monetary field must survive the decimal round trip in
// exact cents.

func TestProductJSON_CentsSurviveRoundTrip(t *testing.T) {
	original := Product{
		ID:    uuid.New(),
		Name:  "Stratocaster",
		Price: 149900,
		Stock: 3,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":1499`)

	var restored Product
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, int64(149900), restored.Price)
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Stock, restored.Stock)
}

func TestTransactionJSON_CentsSurviveRoundTrip(t *testing.T) {
	original := Transaction{
		ID:                uuid.New(),
		TransactionNumber: "TXN-20260830-0001",
		TotalAmount:       25000,
		AmountPaid:        30000,
		ChangeAmount:      5000,
		Items: []TransactionItem{
			{ProductName: "Guitar Strings", Quantity: 2, PriceEach: 1500, Subtotal: 3000},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Transaction
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, int64(25000), restored.TotalAmount)
	assert.Equal(t, int64(30000), restored.AmountPaid)
	assert.Equal(t, int64(5000), restored.ChangeAmount)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, int64(1500), restored.Items[0].PriceEach)
	assert.Equal(t, int64(3000), restored.Items[0].Subtotal)
}

func TestDecimalToCents_Rounding(t *testing.T) {
	assert.Equal(t, int64(1499), decimalToCents(14.99))
	assert.Equal(t, int64(1500), decimalToCents(14.999))
	assert.Equal(t, int64(0), decimalToCents(0))
	assert.Equal(t, int64(-1499), decimalToCents(-14.99))
}
