package services

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"menu-telegram/models"
)

// Ledger appends a human-readable summary block to the sales file for every
// confirmed order. Running totals live for the process lifetime only; on
// restart they start from zero while the file keeps growing.
type Ledger struct {
	mu sync.Mutex

	path string
	// perItemPrices prices each summary row with that item's own unit price.
	// When false the legacy behavior is reproduced: every row is priced with
	// the first entry of the just-confirmed order. That is almost certainly a
	// defect in the original report, kept as the default for output parity.
	perItemPrices bool

	names      []string                // running-totals keys, first-seen order
	totals     map[string]int          // cumulative quantity per name
	unitPrices map[string]models.Money // last seen price per name
}

type OrderSummary struct {
	Count int
	Total models.Money
}

func NewLedger(path string, perItemPrices bool) *Ledger {
	return &Ledger{
		path:          path,
		perItemPrices: perItemPrices,
		totals:        make(map[string]int),
		unitPrices:    make(map[string]models.Money),
	}
}

// RecordOrder folds the order into the running totals and appends the summary
// block. Totals are updated before the append; a write failure is returned to
// be reported but the totals are not rolled back.
func (l *Ledger) RecordOrder(entries []CartEntry) (OrderSummary, error) {
	if len(entries) == 0 {
		return OrderSummary{}, fmt.Errorf("order has no items")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	summary := OrderSummary{Count: len(entries)}
	orderQty := make(map[string]int)
	var orderNames []string
	for _, e := range entries {
		summary.Total += e.Price
		if orderQty[e.Name] == 0 {
			orderNames = append(orderNames, e.Name)
		}
		orderQty[e.Name]++
		l.unitPrices[e.Name] = e.Price
	}

	for _, name := range orderNames {
		if _, seen := l.totals[name]; !seen {
			l.names = append(l.names, name)
		}
		l.totals[name] += orderQty[name]
	}

	if err := l.appendBlock(entries[0].Price, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (l *Ledger) appendBlock(firstPrice models.Money, summary OrderSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-30s%-20s%-15s\n", "Item", "Sales Count", "Total")
	b.WriteString(strings.Repeat("-", 65) + "\n")

	for _, name := range l.names {
		qty := l.totals[name]
		price := firstPrice
		if l.perItemPrices {
			price = l.unitPrices[name]
		}
		rowTotal := price * models.Money(qty)
		fmt.Fprintf(&b, "%-30s%-20d%-15s\n", name, qty, rowTotal.Amount())
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-50s%-15d\n", "Total Sales Count:", summary.Count)
	fmt.Fprintf(&b, "%-50s%-15s\n", "Total Amount:", summary.Total.Amount())
	b.WriteString("\n")

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

// RunningTotal reports the cumulative quantity recorded for name so far.
func (l *Ledger) RunningTotal(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals[name]
}
