package bot

import (
	"context"
	"fmt"
	"strings"

	"menu-telegram/models"
	"menu-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showCategory renders the active tab: a fresh two-column listing pulled from
// the store, item buttons acting as selectable rows, the tab row and the
// role's action row.
func (b *Bot) showCategory(chatID int64, s *session) {
	ctx := context.Background()
	items, err := services.ListItems(ctx, s.category)
	if err != nil {
		b.reportError(chatID, "list items", err)
		return
	}
	cats, err := services.ListCategories(ctx)
	if err != nil {
		b.reportError(chatID, "list categories", err)
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📂 %s\n\n", s.category)
	fmt.Fprintf(&text, "%-25s%s\n", "Item Name", "Price")
	if len(items) == 0 {
		text.WriteString("(no items)\n")
	}
	for _, it := range items {
		fmt.Fprintf(&text, "%-25s%s\n", it.Name, it.Price.Display())
	}
	text.WriteString("\nTap an item to select it.")

	b.sendWithInline(chatID, text.String(), b.listingKeyboard(s, items, cats))
}

// refreshListingMarkup redraws only the keyboard after a selection toggle.
func (b *Bot) refreshListingMarkup(chatID int64, messageID int, s *session) {
	ctx := context.Background()
	items, err := services.ListItems(ctx, s.category)
	if err != nil {
		b.reportError(chatID, "list items", err)
		return
	}
	cats, err := services.ListCategories(ctx)
	if err != nil {
		b.reportError(chatID, "list categories", err)
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, b.listingKeyboard(s, items, cats))
	if _, err := b.api.Request(edit); err != nil {
		log.Errorf("edit markup error: %v", err)
	}
}

func (b *Bot) listingKeyboard(s *session, items []models.MenuItem, cats []models.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, it := range items {
		label := fmt.Sprintf("%s — %s", it.Name, it.Price.Display())
		if _, selected := s.selection[it.ID]; selected {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("item:%d", it.ID)),
		))
	}

	var tabs []tgbotapi.InlineKeyboardButton
	for _, c := range cats {
		label := c.Name
		if c.Name == s.category {
			label = "• " + label + " •"
		}
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(label, "tab:"+c.Name))
	}
	rows = append(rows, tabs)

	switch s.role {
	case roleOwner:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Item", "act:additem"),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete Item", "act:delete"),
		))
	case roleCustomer:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Add to Cart", "act:cart"),
			tgbotapi.NewInlineKeyboardButtonData("🧾 Receipt", "act:receipt"),
			tgbotapi.NewInlineKeyboardButtonData("🧹 Clear Order", "act:clear"),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
