package rename

import (
	"io"

	"seqrename/pkg/types"
)

// Renamer defines the interface for sequential renaming passes.
// This allows the command line to be tested without touching the filesystem.
type Renamer interface {
	// SetOutput sets where original filenames are printed
	SetOutput(w io.Writer)

	// ListEntries returns the sorted listing that drives the numbering
	ListEntries(directory string) ([]string, error)

	// RenameAll renames every listed entry to its sequential name
	RenameAll(directory string) ([]types.RenameResult, error)
}

// Ensure Engine implements the Renamer interface
var _ Renamer = (*Engine)(nil)
