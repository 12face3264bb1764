package domain

import "time"

// ScheduleEntry is one booked occurrence of a plan day. A 3-day plan
// scheduled for Monday yields three entries, Monday through Wednesday.
type ScheduleEntry struct {
	ID        string
	PlanID    string
	PlanTitle string
	Day       int // 1-based day of the plan this entry covers
	StartAt   time.Time
	TimeLabel string // canonical "H:MM AM/PM" form shown to the user
	Source    ScheduleSource
	Status    ScheduleStatus
	EventID   string // calendar collaborator event id, empty if booking failed
	CreatedAt time.Time
}
