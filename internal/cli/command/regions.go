package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/neatops/pulsectl/internal/cli/output"
	"github.com/neatops/pulsectl/internal/pulse"
)

// RegionsCommand returns the regions subcommand group.
func RegionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "regions",
		Aliases: []string{"region"},
		Usage:   "Manage regions",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List regions",
				Action: regionsList,
			},
			{
				Name:  "create",
				Usage: "Create a region",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Region name",
						Required: true,
					},
				},
				Action: regionsCreate,
			},
		},
	}
}

func regionsList(c *cli.Context) error {
	client, _, err := EnsureClient(c)
	if err != nil {
		return err
	}
	return listRegions(client, ParseGlobalFlags(c).Output, c.App.Writer)
}

func regionsCreate(c *cli.Context) error {
	client, _, err := EnsureClient(c)
	if err != nil {
		return err
	}
	return createRegion(client, c.String("name"), c.App.Writer)
}

// listRegions fetches, sorts and renders the region list. Shared with
// the interactive menu.
func listRegions(client *pulse.Client, format string, w io.Writer) error {
	fmt.Fprintln(w, "\nFetching regions...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	regions, err := client.ListRegions(ctx)
	if err != nil {
		return err
	}

	if len(regions) == 0 {
		fmt.Fprintln(w, "\nNo regions found.")
		return nil
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return numericID(regions[i].ID) < numericID(regions[j].ID)
	})

	if format == "json" {
		return output.WriteJSON(w, regions)
	}

	table := &output.Table{Headers: []string{"ID", "NAME"}}
	for _, r := range regions {
		table.AddRow(displayValue(r.ID.String()), displayValue(r.Name))
	}
	if err := table.Render(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal: %d regions\n", len(regions))
	return nil
}

// createRegion creates a region and prints the result. Shared with the
// interactive menu.
func createRegion(client *pulse.Client, name string, w io.Writer) error {
	fmt.Fprintf(w, "\nCreating region '%s'...\n", name)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	region, err := client.CreateRegion(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n✓ Success! Region created:\n")
	fmt.Fprintf(w, "  - Region ID: %s\n", displayValue(region.ID.String()))
	fmt.Fprintf(w, "  - Name: %s\n", region.Name)
	return nil
}

// numericID parses an ID for sorting; non-numeric IDs sort first.
func numericID(n json.Number) int64 {
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// displayValue substitutes N/A for empty fields.
func displayValue(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
