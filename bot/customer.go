package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"menu-telegram/models"
	"menu-telegram/services"
)

// addToCart copies every selected row's (name, price) into the cart, in
// listing order. The cart keeps repeats; selecting Coffee twice across two
// adds yields two Coffee entries.
func (b *Bot) addToCart(chatID int64, s *session) {
	if len(s.selection) == 0 {
		b.warn(chatID, "Select an item before adding to the cart.")
		return
	}

	items, err := services.ListItems(context.Background(), s.category)
	if err != nil {
		b.reportError(chatID, "list items", err)
		return
	}
	added := 0
	for _, it := range items {
		if _, selected := s.selection[it.ID]; !selected {
			continue
		}
		s.cart.Add(services.CartEntry{Name: it.Name, Price: it.Price})
		added++
	}
	s.clearSelection()
	if added == 0 {
		b.warn(chatID, "Select an item before adding to the cart.")
		return
	}
	b.notify(chatID, "Items added to the cart.")
}

// startReceipt shows the line-by-line cart listing and asks for confirmation.
// Declining leaves the cart untouched.
func (b *Bot) startReceipt(chatID int64, s *session) {
	entries := s.cart.Entries()
	if len(entries) == 0 {
		b.warn(chatID, "Your cart is empty.")
		return
	}

	var lines strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&lines, "%s - %s\n", e.Name, e.Price.Display())
	}
	b.requestConfirm(chatID, s, &pendingAction{kind: "receipt"},
		fmt.Sprintf("Receipt:\n%s\nTotal: %s\nConfirm Order?", lines.String(), s.cart.Total().Display()))
}

// confirmOrder drains the cart: ledger append, order archive, then clear.
// A ledger failure is reported but the running totals are already updated
// and the cart is still drained.
func (b *Bot) confirmOrder(chatID int64, userID int64, s *session) {
	entries := s.cart.Entries()
	summary, err := b.ledger.RecordOrder(entries)
	if err != nil {
		b.reportError(chatID, "save order", err)
	}

	if _, err := services.SaveOrder(context.Background(), models.SaveOrderInput{
		UserID:     userID,
		ChatID:     strconv.FormatInt(chatID, 10),
		ItemsCount: summary.Count,
		ItemsTotal: summary.Total,
	}, entries); err != nil {
		log.Errorf("archive order: %v", err)
	}

	s.cart.Clear()
	if err == nil {
		b.notify(chatID, "Order confirmed successfully.")
	}
}

// startClearOrder asks first; a yes empties the cart unconditionally.
func (b *Bot) startClearOrder(chatID int64, s *session) {
	b.requestConfirm(chatID, s, &pendingAction{kind: "clear"},
		"Are you sure you want to clear your order?")
}
