// Package pipeline filters and sorts the job list for display.
package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// FilterAll is the sentinel that bypasses an equality filter.
const FilterAll = "all"

// SortKey selects the single active total order.
type SortKey string

// SortKey constants.
const (
	SortLatest  SortKey = "latest"
	SortOldest  SortKey = "oldest"
	SortCompany SortKey = "company"
	SortMatch   SortKey = "match"
	SortSalary  SortKey = "salary"
)

// IsValid checks the sort key against the closed set.
func (k SortKey) IsValid() bool {
	switch k {
	case SortLatest, SortOldest, SortCompany, SortMatch, SortSalary:
		return true
	}
	return false
}

// Filters holds the active list controls. Equality fields use the "all"
// sentinel to mean unset; an empty keyword matches everything.
type Filters struct {
	Keyword    string
	Location   string
	Mode       string
	Experience string
	Source     string
	Status     string
	Sort       SortKey
}

// DefaultFilters returns the all-pass filter set sorted latest first.
func DefaultFilters() Filters {
	return Filters{
		Location:   FilterAll,
		Mode:       FilterAll,
		Experience: FilterAll,
		Source:     FilterAll,
		Status:     FilterAll,
		Sort:       SortLatest,
	}
}

// Input carries everything the pipeline consumes besides the jobs:
// per-job scores, recorded statuses, and whether stored preferences
// exist. The score threshold applies only when they do.
type Input struct {
	Scores         map[int]int
	Statuses       map[int]models.StatusEntry
	HasPreferences bool
	MinMatchScore  int
}

// Apply runs the filter chain and sorts the survivors. The input slice
// is never mutated.
func Apply(jobs []models.Job, filters Filters, in Input) []models.Job {
	keyword := strings.ToLower(strings.TrimSpace(filters.Keyword))

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(job.Title), keyword) &&
			!strings.Contains(strings.ToLower(job.Company), keyword) {
			continue
		}
		if !passes(filters.Location, job.Location) {
			continue
		}
		if !passes(filters.Mode, string(job.Mode)) {
			continue
		}
		if !passes(filters.Experience, job.Experience) {
			continue
		}
		if !passes(filters.Source, string(job.Source)) {
			continue
		}
		if !passes(filters.Status, string(statusOf(job.ID, in.Statuses))) {
			continue
		}
		if in.HasPreferences && in.Scores != nil && in.Scores[job.ID] < in.MinMatchScore {
			continue
		}
		out = append(out, job)
	}

	sortJobs(out, filters.Sort, in.Scores)
	return out
}

func passes(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// statusOf resolves a job's status, defaulting to "Not Applied" when no
// entry was recorded.
func statusOf(jobID int, statuses map[int]models.StatusEntry) models.ApplicationStatus {
	if entry, ok := statuses[jobID]; ok {
		return entry.Status
	}
	return models.StatusNotApplied
}

func sortJobs(jobs []models.Job, key SortKey, scores map[int]int) {
	switch key {
	case SortOldest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo > jobs[j].PostedDaysAgo
		})
	case SortCompany:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Company < jobs[j].Company
		})
	case SortMatch:
		sort.SliceStable(jobs, func(i, j int) bool {
			return scores[jobs[i].ID] > scores[jobs[j].ID]
		})
	case SortSalary:
		sort.SliceStable(jobs, func(i, j int) bool {
			return firstInteger(jobs[i].SalaryRange) > firstInteger(jobs[j].SalaryRange)
		})
	default: // SortLatest
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo < jobs[j].PostedDaysAgo
		})
	}
}

// firstInteger extracts the first run of digits from the salary text.
// "₹12-18 LPA" reads as 12; text without digits reads as 0.
func firstInteger(s string) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}
