package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int                // Image width in pixels
	Height          int                // Image height in pixels
	TotalPixels     int                // Total number of pixels rendered
	TotalSamples    int                // Total number of camera rays traced
	SamplesPerPixel int                // Samples requested per pixel
	MaxDepth        int                // Bounce limit
	Workers         int                // Number of render workers
	Duration        time.Duration      // Wall clock render time
	BVH             *geometry.BVHStats // Hierarchy stats when the world is a BVH
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Table builds a tabular representation of the render statistics.
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stat", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", s.TotalPixels)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Camera rays", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	if s.BVH != nil {
		table.Append([]string{"BVH nodes", fmt.Sprintf("%d", s.BVH.TotalNodes)})
		table.Append([]string{"BVH depth", fmt.Sprintf("%d (avg %.1f)", s.BVH.MaxDepth, s.BVH.AvgDepth)})
	}
	table.Append([]string{"Rays/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.SetFooter([]string{"Render time", s.Duration.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}
