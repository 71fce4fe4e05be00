package models

// Category is one partition of the catalog. Position is the first-seen order
// in the catalog file and drives the tab order in the bot.
type Category struct {
	ID       int64
	Name     string
	Position int
}

type MenuItem struct {
	ID       int64
	Category string
	Name     string
	Price    Money
}
