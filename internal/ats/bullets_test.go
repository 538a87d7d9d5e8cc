package ats

import "testing"

func TestAnalyzeBullet(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		needsVerb   bool
		needsMetric bool
	}{
		{
			name: "blank input clears both flags",
			text: "",
		},
		{
			name: "whitespace only clears both flags",
			text: "   \t ",
		},
		{
			name: "strong bullet passes both checks",
			text: "Built 3 microservices serving 10K+ requests",
		},
		{
			name:        "weak opener is flagged",
			text:        "Worked on stuff",
			needsVerb:   true,
			needsMetric: true,
		},
		{
			name:        "verb ok but no metric",
			text:        "Designed the onboarding flow",
			needsMetric: true,
		},
		{
			name:      "metric ok but weak opener",
			text:      "Responsible for reducing costs by 25%",
			needsVerb: true,
		},
		{
			name: "percentage counts as metric",
			text: "Reduced latency by 40%",
		},
		{
			name: "multiplier counts as metric",
			text: "Improved throughput 3x under load",
		},
		{
			name: "dollar amount counts as metric",
			text: "Managed $50000 cloud budget",
		},
		{
			name: "unit count counts as metric",
			text: "Migrated 12 endpoints to the new gateway",
		},
		{
			name: "punctuation attached to the opener is stripped",
			text: "Built, shipped and ran 5 endpoints",
		},
		{
			name:        "bullet marker counts as the opener",
			text:        "- Built 5 endpoints",
			needsVerb:   true,
		},
		{
			name: "opener casing is ignored",
			text: "OPTIMIZED queries cutting load 2x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeBullet(tt.text)
			if got.NeedsVerb != tt.needsVerb {
				t.Errorf("NeedsVerb = %v, want %v", got.NeedsVerb, tt.needsVerb)
			}
			if got.NeedsMetric != tt.needsMetric {
				t.Errorf("NeedsMetric = %v, want %v", got.NeedsMetric, tt.needsMetric)
			}
		})
	}
}
