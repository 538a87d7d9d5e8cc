package models

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed jobs.json
var jobsJSON []byte

// LoadJobs decodes the bundled job fixture dataset.
func LoadJobs() ([]Job, error) {
	var jobs []Job
	if err := json.Unmarshal(jobsJSON, &jobs); err != nil {
		return nil, fmt.Errorf("decode job fixtures: %w", err)
	}
	return jobs, nil
}

// Locations returns the distinct job locations sorted alphabetically,
// for filter dropdowns.
func Locations(jobs []Job) []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range jobs {
		if !seen[j.Location] {
			seen[j.Location] = true
			out = append(out, j.Location)
		}
	}
	sort.Strings(out)
	return out
}

// Experiences returns the distinct experience bands in dataset order.
func Experiences(jobs []Job) []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range jobs {
		if !seen[j.Experience] {
			seen[j.Experience] = true
			out = append(out, j.Experience)
		}
	}
	return out
}
