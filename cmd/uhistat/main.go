// Command uhistat fetches a UHI analysis and prints the analytics-panel
// summary: temperature histogram, vegetation breakdown and top hotspots.
// With -export it also writes the full result to a JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/debjganguly/uhi-backend-go/pkg/uhiclient"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Analysis API base URL")
	points := flag.Int("points", 50, "Number of sample points (10-500)")
	days := flag.Int("days", 30, "Observation window in days (7-90)")
	exportPath := flag.String("export", "", "Write the full analysis to this JSON file")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := uhiclient.New(*baseURL)
	if err := client.Health(ctx); err != nil {
		log.Fatalf("Service unavailable: %v", err)
	}

	params := uhiclient.Params{Points: *points, Days: *days}
	result, err := client.Analyze(ctx, params)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printSummary(result)

	if *exportPath != "" {
		if err := client.ExportToFile(ctx, params, *exportPath); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("\nExported analysis to %s\n", *exportPath)
	}
}

func printSummary(result *uhiclient.AnalyzeResult) {
	stats := result.Statistics
	fmt.Printf("Points: %d  LST %.1f-%.1f°C (avg %.1f, std %.1f)  Max UHI +%.1f°C\n",
		stats.TotalPoints,
		stats.Temperature.Min, stats.Temperature.Max,
		stats.Temperature.Avg, stats.Temperature.StdDev,
		stats.MaxUHIIntensity,
	)
	fmt.Printf("Zones: low %d / medium %d / high %d\n\n",
		stats.Zones.Low, stats.Zones.Medium, stats.Zones.High)

	summary := uhiclient.Summarize(result.Data)

	fmt.Println("Temperature distribution:")
	for _, b := range summary.TemperatureHistogram {
		fmt.Printf("  %-8s %d\n", b.Label, b.Count)
	}

	fmt.Println("\nVegetation:")
	for category, count := range summary.VegetationCounts {
		fmt.Printf("  %-20s %d\n", category, count)
	}

	fmt.Println("\nTop hotspots:")
	for i, p := range summary.TopHotspots {
		fmt.Printf("  %d. (%.4f, %.4f)  +%.1f°C  %s — %s\n",
			i+1, p.Lat, p.Lon, p.UHIIntensity, p.Severity, p.Recommendation)
	}
}
