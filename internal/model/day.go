package model

import "time"

// CalendarDay is one derived cell of a month view. Never stored.
type CalendarDay struct {
	Date    time.Time
	Project *Project
}

// ProjectGroup collects the days a single project id occupies
type ProjectGroup struct {
	Project Project
	Dates   []time.Time
}
