package bot

import "menu-telegram/services"

type role string

const (
	roleNone     role = ""
	roleOwner    role = "owner"
	roleCustomer role = "customer"
)

// pendingAction is a confirmation waiting for a yes/no answer. One per
// session; a new confirmation request replaces an unanswered one.
type pendingAction struct {
	kind     string // "delete", "receipt", "clear"
	category string
	itemName string
}

// session is the per-user UI state. The machine is AwaitingRole → one of
// {OwnerView, CustomerView}; there is no way back, an invalid role choice
// terminates the session and a fresh /start builds a new one.
type session struct {
	role        role
	category    string             // active tab
	selection   map[int64]struct{} // selected item ids, active tab only
	cart        services.Cart
	pending     *pendingAction
	awaitingAdd bool // owner is about to send "<name> RM <price>"
}

func newSession() *session {
	return &session{selection: make(map[int64]struct{})}
}

func (s *session) clearSelection() {
	s.selection = make(map[int64]struct{})
}

func (s *session) toggleSelection(itemID int64) {
	if _, ok := s.selection[itemID]; ok {
		delete(s.selection, itemID)
	} else {
		s.selection[itemID] = struct{}{}
	}
}
