package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dxlabs/dxindex/internal/entity"
)

// writeRunResult renders a run summary in the selected format.
func writeRunResult(w io.Writer, format string, result RunResult) error {
	if format == "json" {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "run:           %s\n", result.Run)
	fmt.Fprintf(w, "processed:     %d\n", result.Processed)
	fmt.Fprintf(w, "rejected:      %d\n", result.Rejected)
	fmt.Fprintf(w, "failed:        %d\n", result.Failed)
	fmt.Fprintf(w, "mints skipped: %d\n", result.MintsSkipped)
	fmt.Fprintf(w, "burns skipped: %d\n", result.BurnsSkipped)
	return nil
}

// statsOutput is the wire shape of the stats command output.
type statsOutput struct {
	TotalAssets     string `json:"total_assets"`
	TotalCreators   string `json:"total_creators"`
	TotalHolders    string `json:"total_holders"`
	TotalUsers      string `json:"total_users"`
	TotalPurchases  string `json:"total_purchases"`
	TotalVolume     string `json:"total_volume"`
	TotalRevenue    string `json:"total_revenue"`
	TotalAssetWorth string `json:"total_asset_worth"`
}

// writeStats renders the GlobalStats row in the selected format.
func writeStats(w io.Writer, format string, g *entity.GlobalStats) error {
	out := statsOutput{
		TotalAssets:     g.TotalAssets.String(),
		TotalCreators:   g.TotalCreators.String(),
		TotalHolders:    g.TotalHolders.String(),
		TotalUsers:      g.TotalUsers.String(),
		TotalPurchases:  g.TotalPurchases.String(),
		TotalVolume:     g.TotalVolume.String(),
		TotalRevenue:    g.TotalRevenue.String(),
		TotalAssetWorth: g.TotalAssetWorth.String(),
	}

	if format == "json" {
		return writeJSON(w, out)
	}

	fmt.Fprintf(w, "total assets:      %s\n", out.TotalAssets)
	fmt.Fprintf(w, "total creators:    %s\n", out.TotalCreators)
	fmt.Fprintf(w, "total holders:     %s\n", out.TotalHolders)
	fmt.Fprintf(w, "total users:       %s\n", out.TotalUsers)
	fmt.Fprintf(w, "total purchases:   %s\n", out.TotalPurchases)
	fmt.Fprintf(w, "total volume:      %s\n", out.TotalVolume)
	fmt.Fprintf(w, "total revenue:     %s\n", out.TotalRevenue)
	fmt.Fprintf(w, "total asset worth: %s\n", out.TotalAssetWorth)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
