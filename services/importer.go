package services

import (
	"bufio"
	"context"
	"io"
	"strings"

	"menu-telegram/models"
)

// Catalog is the parsed menu source file: categories in first-seen order,
// each with its item lines in file order. Duplicate names are kept as parsed;
// LoadCatalog's insert-if-absent is what keeps the store free of duplicates.
type Catalog struct {
	Categories []string
	Entries    map[string][]CatalogEntry
}

type CatalogEntry struct {
	Name  string
	Price models.Money
}

// ParseMenuLine splits a line on the literal currency marker into an item
// name and a price. Lines that do not split into exactly two parts, or whose
// right part is not a decimal amount, are not menu lines.
func ParseMenuLine(line string) (name string, price models.Money, ok bool) {
	parts := strings.Split(line, models.CurrencyPrefix)
	if len(parts) != 2 {
		return "", 0, false
	}
	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, false
	}
	price, err := models.ParseAmount(parts[1])
	if err != nil {
		return "", 0, false
	}
	return name, price, true
}

// ParseCatalog reads the menu source. A '#' line opens a category named by
// the trimmed remainder; following menu lines belong to it. Lines before the
// first category, and lines that are not menu lines, are ignored.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{Entries: make(map[string][]CatalogEntry)}
	current := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			current = strings.TrimSpace(line[1:])
			if current == "" {
				continue
			}
			if _, seen := c.Entries[current]; !seen {
				c.Categories = append(c.Categories, current)
				c.Entries[current] = nil
			}
			continue
		}
		if current == "" {
			continue
		}
		name, price, ok := ParseMenuLine(line)
		if !ok {
			continue
		}
		c.Entries[current] = append(c.Entries[current], CatalogEntry{Name: name, Price: price})
	}
	return c, scanner.Err()
}

// LoadCatalog seeds the store from a parsed catalog. Importing the same file
// twice leaves the store unchanged.
func LoadCatalog(ctx context.Context, c *Catalog) error {
	for _, category := range c.Categories {
		if _, err := EnsureCategory(ctx, category); err != nil {
			return err
		}
		for _, e := range c.Entries[category] {
			if err := InsertItemIfAbsent(ctx, category, e.Name, e.Price); err != nil {
				return err
			}
		}
	}
	return nil
}
