package formatter

import (
	"fmt"
	"strings"

	"github.com/printforge/slicectl/internal/domain"
	"github.com/printforge/slicectl/internal/slicer"
)

// RenderSliceSummary renders the post-slice report: job id, statistics, and
// where the G-code was written.
func RenderSliceSummary(j *domain.Job) string {
	var b strings.Builder

	b.WriteString(Header("Slicing completed"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Job ID:"), j.ServiceJobID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Print time:"), Bold(j.EstimatedPrintTime))
	fmt.Fprintf(&b, "%s %.2f mm (%.2f g)\n", Dim("Filament:"), j.FilamentMM, j.FilamentGrams)
	fmt.Fprintf(&b, "%s $%.2f\n", Dim("Cost:"), j.Cost)
	fmt.Fprintf(&b, "\n%s %s (%d bytes)\n", Dim("G-code saved to:"), j.OutputPath, j.GCodeBytes)

	return b.String()
}

// RenderJobTable renders recorded jobs as a table, newest first.
func RenderJobTable(jobs []*domain.Job) string {
	if len(jobs) == 0 {
		return Dim("No recorded jobs.") + "\n"
	}

	headers := []string{"JOB", "MODEL", "PRINT TIME", "FILAMENT", "COST", "WHEN"}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			shortID(j.ServiceJobID),
			j.ModelName,
			j.EstimatedPrintTime,
			fmt.Sprintf("%.1f g", j.FilamentGrams),
			fmt.Sprintf("$%.2f", j.Cost),
			j.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return RenderTable(headers, rows)
}

// RenderJobDetail renders the full record of a single job.
func RenderJobDetail(j *domain.Job) string {
	var b strings.Builder

	b.WriteString(Header("Job " + shortID(j.ServiceJobID)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Service job ID:"), j.ServiceJobID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Model:"), j.ModelPath)
	fmt.Fprintf(&b, "%s %s (%d bytes)\n", Dim("Output:"), j.OutputPath, j.GCodeBytes)
	fmt.Fprintf(&b, "%s %s\n", Dim("Printer:"), j.PrinterPreset)
	fmt.Fprintf(&b, "%s %s\n", Dim("Filament:"), j.FilamentPreset)
	fmt.Fprintf(&b, "%s %s\n", Dim("Process:"), j.ProcessPreset)
	fmt.Fprintf(&b, "%s %s\n", Dim("Print time:"), j.EstimatedPrintTime)
	fmt.Fprintf(&b, "%s %.2f mm (%.2f g), $%.2f\n", Dim("Usage:"), j.FilamentMM, j.FilamentGrams, j.Cost)
	fmt.Fprintf(&b, "%s %s\n", Dim("Sliced at:"), j.CreatedAt.Local().Format("2006-01-02 15:04:05"))

	return b.String()
}

// RenderHealth renders the service health report.
func RenderHealth(endpoint string, h *slicer.HealthStatus) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", HealthIndicator(h.Status), Dim(endpoint))
	fmt.Fprintf(&b, "%s %s\n", Dim("Service version:"), h.Version)
	fmt.Fprintf(&b, "%s %s\n", Dim("BambuStudio:"), h.BambuVersion)

	return b.String()
}

// shortID abbreviates a uuid-style id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
