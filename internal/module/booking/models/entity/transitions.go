package entity

// transitions is the single source of truth for which actor may move a
// booking from one status to another. Every mutating entry point consults it;
// nothing else in the codebase encodes transition rules. completed is absent
// on purpose: the promotion happens only inside the completion gate, which
// sets the completion flags in the same transaction as the status.
var transitions = map[Status]map[Actor][]Status{
	StatusRequest: {
		ActorVendor: {StatusApproved, StatusDeclined, StatusCancelled},
		ActorCouple: {StatusCancelled},
		ActorAdmin:  {StatusApproved, StatusDeclined, StatusCancelled},
	},
	StatusApproved: {
		ActorSystem: {StatusDownpayment, StatusFullyPaid},
		ActorVendor: {StatusCancelled},
		ActorCouple: {StatusCancelled},
		ActorAdmin:  {StatusDownpayment, StatusFullyPaid, StatusCancelled},
	},
	StatusDownpayment: {
		ActorSystem: {StatusFullyPaid},
		ActorVendor: {StatusCancelled},
		ActorCouple: {StatusCancelled},
		ActorAdmin:  {StatusFullyPaid, StatusCancelled},
	},
	StatusFullyPaid: {
		ActorVendor: {StatusCancelled},
		ActorCouple: {StatusCancelled},
		ActorAdmin:  {StatusCancelled},
	},
}

// CanTransition reports whether actor may move a booking from one status to
// another. Re-asserting the current status (a note refresh such as
// quote_accepted or balance_due) is allowed on any non-terminal booking.
func CanTransition(from Status, actor Actor, to Status) bool {
	if from == to {
		return !from.Terminal()
	}

	for _, allowed := range transitions[from][actor] {
		if allowed == to {
			return true
		}
	}
	return false
}
