package bot

import (
	"context"
	"fmt"
	"time"

	"menu-telegram/services"
)

// handleAddItemInput consumes the owner's "<name> RM <price>" line. Same
// grammar as the catalog file, so the menu source and the bot accept the
// same spelling.
func (b *Bot) handleAddItemInput(chatID int64, s *session, text string) {
	name, price, ok := services.ParseMenuLine(text)
	if !ok {
		b.warn(chatID, "Please enter both item name and price, e.g. Coffee RM 5.00")
		return
	}

	ctx := context.Background()
	exists, err := services.ItemExists(ctx, s.category, name)
	if err != nil {
		b.reportError(chatID, "check item", err)
		return
	}
	if exists {
		b.warn(chatID, "Item already exists in the database.")
		return
	}
	if err := services.InsertItemIfAbsent(ctx, s.category, name, price); err != nil {
		b.reportError(chatID, "add item", err)
		return
	}

	s.awaitingAdd = false
	b.showCategory(chatID, s)
}

// startDeleteItem needs a selected row; deletion itself waits for a yes.
func (b *Bot) startDeleteItem(chatID int64, s *session) {
	if len(s.selection) == 0 {
		b.warn(chatID, "Please select an item to delete.")
		return
	}

	ctx := context.Background()
	items, err := services.ListItems(ctx, s.category)
	if err != nil {
		b.reportError(chatID, "list items", err)
		return
	}
	// First selected row in listing order.
	for _, it := range items {
		if _, selected := s.selection[it.ID]; !selected {
			continue
		}
		b.requestConfirm(chatID, s, &pendingAction{
			kind:     "delete",
			category: s.category,
			itemName: it.Name,
		}, fmt.Sprintf("Are you sure you want to delete %q?", it.Name))
		return
	}
	b.warn(chatID, "Please select an item to delete.")
}

func (b *Bot) deleteItem(chatID int64, s *session, category, name string) {
	if err := services.DeleteItem(context.Background(), category, name); err != nil {
		b.reportError(chatID, "delete item", err)
		return
	}
	s.clearSelection()
	b.showCategory(chatID, s)
}

// handleStats reports today's archived orders to the owner.
func (b *Bot) handleStats(chatID int64, userID int64) {
	s := b.getSession(userID)
	if s == nil || s.role != roleOwner {
		b.warn(chatID, "Stats are available to the owner only.")
		return
	}

	date := time.Now().Format("2006-01-02")
	stats, err := services.GetDailyStats(context.Background(), date)
	if err != nil {
		b.reportError(chatID, "daily stats", err)
		return
	}
	b.notify(chatID, fmt.Sprintf(
		"📊 %s\nOrders: %d\nItems sold: %d\nRevenue: %s",
		date, stats.OrdersCount, stats.ItemsCount, stats.ItemsRevenue.Display(),
	))
}
