package harness

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the deterministic serialization of a scenario's final
// aggregate state, compared against golden files.
type Snapshot struct {
	Scenario     string        `json:"scenario"`
	Stats        statsSnapshot `json:"stats"`
	MintsSkipped uint64        `json:"mints_skipped"`
	BurnsSkipped uint64        `json:"burns_skipped"`
}

type statsSnapshot struct {
	TotalAssets     string `json:"total_assets"`
	TotalCreators   string `json:"total_creators"`
	TotalHolders    string `json:"total_holders"`
	TotalUsers      string `json:"total_users"`
	TotalPurchases  string `json:"total_purchases"`
	TotalVolume     string `json:"total_volume"`
	TotalRevenue    string `json:"total_revenue"`
	TotalAssetWorth string `json:"total_asset_worth"`
}

// RunWithGolden executes a scenario and compares its final aggregate state
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	result, err := Run(context.Background(), s)
	if err != nil {
		t.Fatalf("run scenario %s: %v", s.Name, err)
	}
	defer result.Close()

	snapshot := Snapshot{
		Scenario: s.Name,
		Stats: statsSnapshot{
			TotalAssets:     result.Stats.TotalAssets.String(),
			TotalCreators:   result.Stats.TotalCreators.String(),
			TotalHolders:    result.Stats.TotalHolders.String(),
			TotalUsers:      result.Stats.TotalUsers.String(),
			TotalPurchases:  result.Stats.TotalPurchases.String(),
			TotalVolume:     result.Stats.TotalVolume.String(),
			TotalRevenue:    result.Stats.TotalRevenue.String(),
			TotalAssetWorth: result.Stats.TotalAssetWorth.String(),
		},
		MintsSkipped: result.Metrics.MintsSkipped,
		BurnsSkipped: result.Metrics.BurnsSkipped,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)
}
