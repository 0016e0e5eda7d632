package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/scene"
)

// ListScenes prints the available scene presets.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx, "")

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Scene", "Description"})
	for _, group := range scene.ListScenes() {
		for i, info := range group.Scenes {
			groupName := ""
			if i == 0 {
				groupName = group.Name
			}
			table.Append([]string{groupName, info.ID, info.Description})
		}
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
