package domain

import "time"

// MaxWeeklyGoalLen caps the free-text goal content for one week.
const MaxWeeklyGoalLen = 500

// WeeklyGoal stores the textual goals for one calendar week. WeekStart is
// always a Monday; there is at most one entry per week.
type WeeklyGoal struct {
	ID        string
	WeekStart time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekEnd returns the Sunday closing the goal's week.
func (g *WeeklyGoal) WeekEnd() time.Time {
	return g.WeekStart.AddDate(0, 0, 6)
}
