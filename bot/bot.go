package bot

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"menu-telegram/config"
	"menu-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	ledger *services.Ledger

	sessions   map[int64]*session
	sessionsMu sync.Mutex
}

func New(cfg *config.Config, ledger *services.Ledger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		ledger:   ledger,
		sessions: make(map[int64]*session),
	}, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		userID := msg.From.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case text == "/start":
			b.handleStart(msg.Chat.ID, userID)
		case text == "/stats":
			b.handleStats(msg.Chat.ID, userID)
		default:
			b.handleText(msg.Chat.ID, userID, text)
		}
	}
}

func (b *Bot) getSession(userID int64) *session {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	return b.sessions[userID]
}

func (b *Bot) putSession(userID int64, s *session) {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	b.sessions[userID] = s
}

func (b *Bot) dropSession(userID int64) {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	delete(b.sessions, userID)
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("send error: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("send error: %v", err)
	}
}

// notify, warn and reportError are the modal notices of the original UI.
func (b *Bot) notify(chatID int64, text string) {
	b.send(chatID, text)
}

func (b *Bot) warn(chatID int64, text string) {
	b.send(chatID, "⚠️ "+text)
}

func (b *Bot) reportError(chatID int64, action string, err error) {
	log.Errorf("%s: %v", action, err)
	b.send(chatID, "❌ An error occurred: "+err.Error())
}

// requestConfirm presents a yes/no choice and parks the action until the
// answer callback arrives. Only one action can be pending per session.
func (b *Bot) requestConfirm(chatID int64, s *session, action *pendingAction, text string) {
	s.pending = action
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", "confirm:yes"),
			tgbotapi.NewInlineKeyboardButtonData("No", "confirm:no"),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) handleStart(chatID int64, userID int64) {
	b.putSession(userID, newSession())
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Owner", "role:owner"),
			tgbotapi.NewInlineKeyboardButtonData("Customer", "role:customer"),
		),
	)
	b.sendWithInline(chatID, "Select user type:", kb)
}

// handleText covers typed input: the role answer while AwaitingRole, and the
// owner's "<name> RM <price>" line while an add is in progress.
func (b *Bot) handleText(chatID int64, userID int64, text string) {
	s := b.getSession(userID)
	if s == nil {
		b.send(chatID, "Send /start to begin.")
		return
	}
	if s.role == roleNone {
		b.chooseRole(chatID, userID, s, text)
		return
	}
	if s.role == roleOwner && s.awaitingAdd {
		b.handleAddItemInput(chatID, s, text)
		return
	}
}

// chooseRole validates the typed role case-insensitively. An unrecognized
// role terminates the session, mirroring the original window closing.
func (b *Bot) chooseRole(chatID int64, userID int64, s *session, text string) {
	switch strings.ToLower(text) {
	case string(roleOwner):
		b.enterView(chatID, userID, s, roleOwner)
	case string(roleCustomer):
		b.enterView(chatID, userID, s, roleCustomer)
	default:
		b.dropSession(userID)
		b.send(chatID, "❌ Invalid user type. Exiting.")
	}
}

func (b *Bot) enterView(chatID int64, userID int64, s *session, r role) {
	if r == roleOwner && b.cfg.Telegram.OwnerID != 0 && userID != b.cfg.Telegram.OwnerID {
		b.dropSession(userID)
		b.send(chatID, "❌ Owner access is restricted.")
		return
	}

	ctx := context.Background()
	cats, err := services.ListCategories(ctx)
	if err != nil {
		b.reportError(chatID, "list categories", err)
		return
	}
	if len(cats) == 0 {
		b.warn(chatID, "The menu is empty.")
		return
	}

	s.role = r
	s.category = cats[0].Name
	s.clearSelection()
	b.showCategory(chatID, s)
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	data := cq.Data

	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	s := b.getSession(userID)
	if s == nil {
		b.send(chatID, "Send /start to begin.")
		return
	}

	switch {
	case data == "role:owner":
		if s.role == roleNone {
			b.enterView(chatID, userID, s, roleOwner)
		}
	case data == "role:customer":
		if s.role == roleNone {
			b.enterView(chatID, userID, s, roleCustomer)
		}
	case s.role == roleNone:
		// View actions require a role first.
		b.send(chatID, "Send /start to begin.")
	case strings.HasPrefix(data, "tab:"):
		b.switchTab(chatID, s, strings.TrimPrefix(data, "tab:"))
	case strings.HasPrefix(data, "item:"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "item:"), 10, 64)
		if err != nil {
			return
		}
		s.toggleSelection(id)
		b.refreshListingMarkup(chatID, cq.Message.MessageID, s)
	case data == "confirm:yes" || data == "confirm:no":
		b.resolveConfirm(chatID, userID, s, data == "confirm:yes")
	case data == "act:additem" && s.role == roleOwner:
		s.awaitingAdd = true
		b.send(chatID, "Send the new item as: <name> RM <price>")
	case data == "act:delete" && s.role == roleOwner:
		b.startDeleteItem(chatID, s)
	case data == "act:cart" && s.role == roleCustomer:
		b.addToCart(chatID, s)
	case data == "act:receipt" && s.role == roleCustomer:
		b.startReceipt(chatID, s)
	case data == "act:clear" && s.role == roleCustomer:
		b.startClearOrder(chatID, s)
	}
}

func (b *Bot) switchTab(chatID int64, s *session, category string) {
	s.category = category
	s.clearSelection()
	s.awaitingAdd = false
	b.showCategory(chatID, s)
}

func (b *Bot) resolveConfirm(chatID int64, userID int64, s *session, yes bool) {
	pending := s.pending
	s.pending = nil
	if pending == nil {
		return
	}
	if !yes {
		return
	}
	switch pending.kind {
	case "delete":
		b.deleteItem(chatID, s, pending.category, pending.itemName)
	case "receipt":
		b.confirmOrder(chatID, userID, s)
	case "clear":
		s.cart.Clear()
		b.notify(chatID, "Your order has been cleared.")
	}
}
