package domain

import "time"

type List struct {
	ID        string
	Title     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Sublist struct {
	ID        string
	ListID    string
	Title     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
