package entity

import (
	"fmt"
	"strings"
)

// SubStatus is the business vocabulary the storage enum is too narrow for.
// It is never persisted as its own column: EncodeSubStatus folds it into the
// coarse status plus a tagged note, and DecodeSubStatus recovers it on read.
type SubStatus string

const (
	SubQuoteSent          SubStatus = "quote_sent"
	SubQuoteAccepted      SubStatus = "quote_accepted"
	SubDepositPaid        SubStatus = "deposit_paid"
	SubBalanceDue         SubStatus = "balance_due"
	SubFullyPaid          SubStatus = "fully_paid"
	SubPaymentFailed      SubStatus = "payment_failed"
	SubAwaitingCompletion SubStatus = "awaiting_completion"
)

const noteTagPrefix = "[status:"

// subStatusCoarse is the canonical coarse status each sub-status encodes to.
var subStatusCoarse = map[SubStatus]Status{
	SubQuoteSent:          StatusApproved,
	SubQuoteAccepted:      StatusApproved,
	SubDepositPaid:        StatusDownpayment,
	SubBalanceDue:         StatusDownpayment,
	SubFullyPaid:          StatusFullyPaid,
	SubPaymentFailed:      StatusApproved,
	SubAwaitingCompletion: StatusFullyPaid,
}

// subStatusCompatible lists every coarse status a tag may legally sit on.
// payment_failed and awaiting_completion can be observed at more than one
// point of the lifecycle, the rest only at their canonical status.
var subStatusCompatible = map[SubStatus][]Status{
	SubQuoteSent:          {StatusApproved},
	SubQuoteAccepted:      {StatusApproved},
	SubDepositPaid:        {StatusDownpayment},
	SubBalanceDue:         {StatusDownpayment},
	SubFullyPaid:          {StatusFullyPaid},
	SubPaymentFailed:      {StatusApproved, StatusDownpayment},
	SubAwaitingCompletion: {StatusDownpayment, StatusFullyPaid},
}

// EncodeSubStatus maps a sub-status onto its coarse status plus a tagged
// note. The tag is what DecodeSubStatus parses back, so the pair round-trips.
func EncodeSubStatus(sub SubStatus, text string) (Status, string, error) {
	coarse, ok := subStatusCoarse[sub]
	if !ok {
		return "", "", fmt.Errorf("unknown sub-status %q", sub)
	}

	note := noteTagPrefix + string(sub) + "]"
	if text != "" {
		note += " " + text
	}
	return coarse, note, nil
}

// DecodeSubStatus recovers the sub-status from a persisted (status, note)
// pair. A note without a tag, or a tag that cannot legally sit on the given
// status, decodes to nothing.
func DecodeSubStatus(status Status, note string) (SubStatus, bool) {
	if !strings.HasPrefix(note, noteTagPrefix) {
		return "", false
	}
	end := strings.IndexByte(note, ']')
	if end < 0 {
		return "", false
	}

	sub := SubStatus(note[len(noteTagPrefix):end])
	for _, allowed := range subStatusCompatible[sub] {
		if allowed == status {
			return sub, true
		}
	}
	return "", false
}

// NoteText strips the sub-status tag off a persisted note.
func NoteText(note string) string {
	if !strings.HasPrefix(note, noteTagPrefix) {
		return note
	}
	end := strings.IndexByte(note, ']')
	if end < 0 {
		return note
	}
	return strings.TrimPrefix(note[end+1:], " ")
}
