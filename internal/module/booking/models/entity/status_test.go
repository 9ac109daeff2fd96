package entity_test

import (
	"testing"

	"wedding-marketplace/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeSubStatus(t *testing.T) {
	testCases := []struct {
		name           string
		sub            entity.SubStatus
		text           string
		expectedCoarse entity.Status
	}{
		{
			name:           "quote sent",
			sub:            entity.SubQuoteSent,
			text:           "quote attached for venue styling",
			expectedCoarse: entity.StatusApproved,
		},
		{
			name:           "quote accepted",
			sub:            entity.SubQuoteAccepted,
			text:           "",
			expectedCoarse: entity.StatusApproved,
		},
		{
			name:           "deposit paid",
			sub:            entity.SubDepositPaid,
			text:           "deposit received",
			expectedCoarse: entity.StatusDownpayment,
		},
		{
			name:           "balance due",
			sub:            entity.SubBalanceDue,
			text:           "balance due 30 days before the event",
			expectedCoarse: entity.StatusDownpayment,
		},
		{
			name:           "fully paid",
			sub:            entity.SubFullyPaid,
			text:           "",
			expectedCoarse: entity.StatusFullyPaid,
		},
		{
			name:           "awaiting completion",
			sub:            entity.SubAwaitingCompletion,
			text:           "event held, waiting on confirmations",
			expectedCoarse: entity.StatusFullyPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coarse, note, err := entity.EncodeSubStatus(tc.sub, tc.text)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCoarse, coarse)

			// the pair must round-trip
			sub, ok := entity.DecodeSubStatus(coarse, note)
			assert.True(t, ok)
			assert.Equal(t, tc.sub, sub)

			// and the free text must come back unchanged
			assert.Equal(t, tc.text, entity.NoteText(note))
		})
	}
}

func TestEncodeSubStatusUnknown(t *testing.T) {
	_, _, err := entity.EncodeSubStatus("on_hold", "")
	assert.Error(t, err)
}

func TestDecodeSubStatus(t *testing.T) {
	testCases := []struct {
		name        string
		status      entity.Status
		note        string
		expectedSub entity.SubStatus
		expectedOK  bool
	}{
		{
			name:        "payment failed on approved",
			status:      entity.StatusApproved,
			note:        "[status:payment_failed] card declined",
			expectedSub: entity.SubPaymentFailed,
			expectedOK:  true,
		},
		{
			name:        "payment failed on downpayment",
			status:      entity.StatusDownpayment,
			note:        "[status:payment_failed] insufficient funds",
			expectedSub: entity.SubPaymentFailed,
			expectedOK:  true,
		},
		{
			name:       "tag on incompatible status",
			status:     entity.StatusRequest,
			note:       "[status:deposit_paid]",
			expectedOK: false,
		},
		{
			name:       "plain note without tag",
			status:     entity.StatusApproved,
			note:       "please call before noon",
			expectedOK: false,
		},
		{
			name:       "unterminated tag",
			status:     entity.StatusApproved,
			note:       "[status:quote_sent",
			expectedOK: false,
		},
		{
			name:       "empty note",
			status:     entity.StatusApproved,
			note:       "",
			expectedOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub, ok := entity.DecodeSubStatus(tc.status, tc.note)
			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedSub, sub)
			}
		})
	}
}

func TestNoteText(t *testing.T) {
	assert.Equal(t, "card declined", entity.NoteText("[status:payment_failed] card declined"))
	assert.Equal(t, "", entity.NoteText("[status:fully_paid]"))
	assert.Equal(t, "no tag here", entity.NoteText("no tag here"))
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    entity.Status
		actor   entity.Actor
		to      entity.Status
		allowed bool
	}{
		{"vendor approves request", entity.StatusRequest, entity.ActorVendor, entity.StatusApproved, true},
		{"vendor declines request", entity.StatusRequest, entity.ActorVendor, entity.StatusDeclined, true},
		{"couple cancels request", entity.StatusRequest, entity.ActorCouple, entity.StatusCancelled, true},
		{"couple cannot approve own request", entity.StatusRequest, entity.ActorCouple, entity.StatusApproved, false},
		{"system records deposit", entity.StatusApproved, entity.ActorSystem, entity.StatusDownpayment, true},
		{"system records full payment from approved", entity.StatusApproved, entity.ActorSystem, entity.StatusFullyPaid, true},
		{"system settles balance", entity.StatusDownpayment, entity.ActorSystem, entity.StatusFullyPaid, true},
		{"system cannot skip payment", entity.StatusRequest, entity.ActorSystem, entity.StatusDownpayment, false},
		{"vendor cancels after approval", entity.StatusApproved, entity.ActorVendor, entity.StatusCancelled, true},
		{"vendor cannot complete directly", entity.StatusFullyPaid, entity.ActorVendor, entity.StatusCompleted, false},
		{"system cannot complete directly", entity.StatusFullyPaid, entity.ActorSystem, entity.StatusCompleted, false},
		{"admin cannot complete directly", entity.StatusFullyPaid, entity.ActorAdmin, entity.StatusCompleted, false},
		{"couple cannot complete directly", entity.StatusFullyPaid, entity.ActorCouple, entity.StatusCompleted, false},
		{"nothing leaves declined", entity.StatusDeclined, entity.ActorAdmin, entity.StatusApproved, false},
		{"nothing leaves cancelled", entity.StatusCancelled, entity.ActorAdmin, entity.StatusRequest, false},
		{"nothing leaves completed", entity.StatusCompleted, entity.ActorAdmin, entity.StatusCancelled, false},
		{"note refresh on live booking", entity.StatusApproved, entity.ActorVendor, entity.StatusApproved, true},
		{"no note refresh on terminal booking", entity.StatusCompleted, entity.ActorAdmin, entity.StatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, entity.CanTransition(tc.from, tc.actor, tc.to))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, entity.StatusCompleted.Terminal())
	assert.True(t, entity.StatusDeclined.Terminal())
	assert.True(t, entity.StatusCancelled.Terminal())
	assert.False(t, entity.StatusFullyPaid.Terminal())

	assert.True(t, entity.StatusDownpayment.Paid())
	assert.True(t, entity.StatusFullyPaid.Paid())
	assert.True(t, entity.StatusCompleted.Paid())
	assert.False(t, entity.StatusApproved.Paid())

	assert.True(t, entity.StatusRequest.Valid())
	assert.False(t, entity.Status("on_hold").Valid())
}
