package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
)

// LsCmd prints one listing from the listing service
type LsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Path   string `arg:"" optional:"" help:"Path to list (the server decides when empty)"`
}

// lsOutput is the JSON shape of ls
type lsOutput struct {
	CurrentPath string   `json:"current_path"`
	Directories []string `json:"directories"`
	ParentPath  *string  `json:"parent_path"`
	Paths       []string `json:"paths"`
}

// Run executes the ls command
func (l *LsCmd) Run(cli *CLI) error {
	listing, err := cli.Container.Lister.Browse(context.Background(), l.Path)
	if err != nil {
		return err
	}
	if listing.Error != "" {
		return &domain.ListingError{Message: listing.Error, Path: l.Path}
	}

	base := l.Path
	if base == "" {
		base = listing.CurrentPath
	}

	output := lsOutput{
		CurrentPath: listing.CurrentPath,
		Directories: listing.Directories,
		ParentPath:  listing.ParentPath,
		Paths:       make([]string, 0, len(listing.Directories)),
	}
	if output.Directories == nil {
		output.Directories = []string{}
	}
	for _, dir := range listing.Directories {
		output.Paths = append(output.Paths, domain.JoinPath(base, dir))
	}

	logging.Logger.Debug("Listing printed", "path", l.Path, "directories", len(output.Directories))

	if l.Format == "json" {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.out(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH")
	for i, dir := range output.Directories {
		fmt.Fprintf(w, "%s\t%s\n", domain.SanitizeLabel(dir), domain.SanitizeLabel(output.Paths[i]))
	}
	return w.Flush()
}
