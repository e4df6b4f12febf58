package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/neatops/pulsectl/internal/cli/output"
	"github.com/neatops/pulsectl/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			info := buildinfo.Get()
			w := c.App.Writer
			if ParseGlobalFlags(c).Output == "json" {
				return output.WriteJSON(w, info)
			}
			fmt.Fprintf(w, "pulsectl %s\n", buildinfo.String())
			fmt.Fprintf(w, "  built: %s\n", info.Date)
			fmt.Fprintf(w, "  go: %s\n", info.GoVersion)
			return nil
		},
	}
}
