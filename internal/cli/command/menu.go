package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/neatops/pulsectl/internal/cli/config"
	"github.com/neatops/pulsectl/internal/pulse"
	"github.com/neatops/pulsectl/internal/roomfile"
)

const banner = "================================================================================"

// MenuCommand returns the interactive menu command.
func MenuCommand() *cli.Command {
	return &cli.Command{
		Name:   "menu",
		Usage:  "Interactive menu mode",
		Action: runMenu,
	}
}

func runMenu(c *cli.Context) error {
	client, cfg, err := EnsureClient(c)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%s\nNEAT PULSE API TOOL\n%s\n", banner, banner)
	fmt.Fprintf(out, "Loaded configuration for organization: %s\n", cfg.OrgID)

	menu := &menuSession{
		in:  bufio.NewReader(os.Stdin),
		out: out,
		c:   c,
	}
	return menu.run(client, cfg)
}

// menuSession is the interactive read loop.
type menuSession struct {
	in  *bufio.Reader
	out io.Writer
	c   *cli.Context
}

func (m *menuSession) run(client *pulse.Client, cfg *config.Config) error {
	format := ParseGlobalFlags(m.c).Output

	for {
		m.printOptions()

		choice, err := m.prompt("Select an option (1-6): ")
		if err == io.EOF {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := listRegions(client, format, m.out); err != nil {
				m.report(err)
			}
		case "2":
			name, err := m.prompt("\nEnter region name: ")
			if err != nil {
				return m.eofOK(err)
			}
			if name == "" {
				fmt.Fprintln(m.out, "Error: region name cannot be empty.")
				continue
			}
			if err := createRegion(client, name, m.out); err != nil {
				m.report(err)
			}
		case "3":
			if err := listLocations(client, format, m.out); err != nil {
				m.report(err)
			}
		case "4":
			regionID, name, ok, err := m.promptLocation()
			if err != nil {
				return m.eofOK(err)
			}
			if !ok {
				continue
			}
			if err := createLocation(client, regionID, name, m.out); err != nil {
				m.report(err)
			}
		case "5":
			path, err := m.promptRoomFile()
			if err != nil {
				return m.eofOK(err)
			}
			if path == "" {
				continue
			}
			logger := NewLogger(m.c.Bool("verbose"))
			if err := importRooms(client, cfg, path, logger, m.out); err != nil {
				m.report(err)
			}
		case "6", "exit", "quit":
			fmt.Fprintln(m.out, "\nExiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter 1-6.")
		}
	}
}

func (m *menuSession) printOptions() {
	fmt.Fprintf(m.out, "\n%s\nNEAT PULSE API TOOL\n%s\n", banner, banner)
	fmt.Fprintln(m.out, "\nOptions:")
	fmt.Fprintln(m.out, "  1. List regions")
	fmt.Fprintln(m.out, "  2. Create region")
	fmt.Fprintln(m.out, "  3. List locations")
	fmt.Fprintln(m.out, "  4. Create location")
	fmt.Fprintln(m.out, "  5. Create rooms from file")
	fmt.Fprintln(m.out, "  6. Exit")
	fmt.Fprintln(m.out)
}

// prompt reads one trimmed line.
func (m *menuSession) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptLocation gathers input for location creation. ok is false when
// the input was rejected (already reported to the user).
func (m *menuSession) promptLocation() (regionID int, name string, ok bool, err error) {
	idInput, err := m.prompt("\nEnter region ID: ")
	if err != nil {
		return 0, "", false, err
	}
	if idInput == "" {
		fmt.Fprintln(m.out, "Error: region ID cannot be empty.")
		return 0, "", false, nil
	}
	regionID, convErr := strconv.Atoi(idInput)
	if convErr != nil {
		fmt.Fprintf(m.out, "Error: region ID must be a number. You entered: '%s'\n", idInput)
		return 0, "", false, nil
	}

	name, err = m.prompt("Enter location name: ")
	if err != nil {
		return 0, "", false, err
	}
	if name == "" {
		fmt.Fprintln(m.out, "Error: location name cannot be empty.")
		return 0, "", false, nil
	}
	return regionID, name, true, nil
}

// promptRoomFile lists the room files in the working directory and asks
// for a selection. An empty path means cancelled.
func (m *menuSession) promptRoomFile() (string, error) {
	files, err := roomfile.ListImportFiles(".")
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		fmt.Fprintln(m.out, "\nNo CSV or XLSX files found in the current directory.")
		return "", nil
	}

	fmt.Fprintln(m.out, "\nAvailable room files:")
	for i, name := range files {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, name)
	}
	customOption := len(files) + 1
	cancelOption := len(files) + 2
	fmt.Fprintf(m.out, "  %d. Enter custom filename\n", customOption)
	fmt.Fprintf(m.out, "  %d. Cancel\n", cancelOption)

	for {
		selection, err := m.prompt(fmt.Sprintf("\nSelect a file (1-%d): ", cancelOption))
		if err != nil {
			return "", err
		}
		num, convErr := strconv.Atoi(selection)
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input. Please enter a number.")
			continue
		}
		switch {
		case num >= 1 && num <= len(files):
			return files[num-1], nil
		case num == customOption:
			return m.prompt("Enter filename: ")
		case num == cancelOption:
			return "", nil
		default:
			fmt.Fprintf(m.out, "Invalid selection. Please enter a number between 1 and %d.\n", cancelOption)
		}
	}
}

func (m *menuSession) report(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

// eofOK converts EOF on stdin into a clean exit.
func (m *menuSession) eofOK(err error) error {
	if err == io.EOF {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}
