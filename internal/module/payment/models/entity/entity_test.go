package entity_test

import (
	"testing"

	"wedding-marketplace/internal/module/payment/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name        string
		totalPaid   int64
		amount      int64
		totalAmount int64
		expected    entity.PaymentType
	}{
		{"first payment below total is a deposit", 0, 3000, 10000, entity.TypeDeposit},
		{"first payment covering the total is full payment", 0, 10000, 10000, entity.TypeFullPayment},
		{"first payment above the total is full payment", 0, 12000, 10000, entity.TypeFullPayment},
		{"any later payment is a balance", 3000, 7000, 10000, entity.TypeBalance},
		{"partial later payment is still a balance", 3000, 2000, 10000, entity.TypeBalance},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entity.Classify(tc.totalPaid, tc.amount, tc.totalAmount))
		})
	}
}

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "WB-00000001", entity.Receipt{ID: 1}.Number())
	assert.Equal(t, "WB-00012345", entity.Receipt{ID: 12345}.Number())
	assert.Equal(t, "WB-123456789", entity.Receipt{ID: 123456789}.Number())
}

func TestPaymentTypeValid(t *testing.T) {
	assert.True(t, entity.TypeDeposit.Valid())
	assert.True(t, entity.TypeBalance.Valid())
	assert.True(t, entity.TypeFullPayment.Valid())
	assert.False(t, entity.PaymentType("refund").Valid())
	assert.False(t, entity.PaymentType("").Valid())
}
