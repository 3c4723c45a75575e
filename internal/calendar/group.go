package calendar

import (
	"sort"
	"time"

	"github.com/existflow/shootcal/internal/model"
)

// GroupBlocked groups the blocked days of projects by project id. Dates
// within a group are ascending and groups are ordered by their first date.
// When month is non-nil only days inside that month are considered.
func GroupBlocked(projects map[string]model.Project, loc *time.Location, month *time.Time) []model.ProjectGroup {
	keys := make([]string, 0, len(projects))
	for key, p := range projects {
		if p.IsBlocked() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	index := make(map[string]int)
	var groups []model.ProjectGroup
	for _, key := range keys {
		date, err := model.ParseDayKey(key, loc)
		if err != nil {
			continue
		}
		if month != nil && !model.SameMonth(date, *month) {
			continue
		}

		p := projects[key]
		i, ok := index[p.ID]
		if !ok {
			i = len(groups)
			index[p.ID] = i
			groups = append(groups, model.ProjectGroup{Project: p})
		}
		groups[i].Dates = append(groups[i].Dates, date)
	}
	return groups
}
