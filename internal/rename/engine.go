package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"seqrename/internal/config"
	"seqrename/internal/errors"
	"seqrename/internal/log"
	"seqrename/pkg/types"

	"github.com/gobwas/glob"
)

// Engine renames the entries of a directory to sequential numeric names
type Engine struct {
	extension string
	ignore    []glob.Glob
	out       io.Writer // receives each original filename before it is renamed
	rename    func(oldpath, newpath string) error
}

// New creates an Engine using the default extension and no ignore patterns
func New() *Engine {
	return &Engine{
		extension: config.DefaultExtension,
		out:       os.Stdout,
		rename:    os.Rename,
	}
}

// NewWithConfig creates an Engine from a validated configuration
func NewWithConfig(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	matchers, err := cfg.IgnoreMatchers()
	if err != nil {
		return nil, err
	}
	return &Engine{
		extension: cfg.Settings.Extension,
		ignore:    matchers,
		out:       os.Stdout,
		rename:    os.Rename,
	}, nil
}

// SetOutput sets where original filenames are printed
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// Extension returns the suffix appended to each index
func (e *Engine) Extension() string {
	return e.extension
}

// TargetName returns the decimal index followed by ext
func TargetName(index int, ext string) string {
	return strconv.Itoa(index) + ext
}

// ListEntries returns the names of the direct entries of directory, minus
// ignored ones, in byte-wise ascending order. The order is lexicographic,
// so "10.jpg" comes before "2.jpg".
func (e *Engine) ListEntries(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.FromOS("error reading directory", directory, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if e.ignored(entry.Name()) {
			log.LogWithFields(log.F("entry", entry.Name())).Debug("Ignoring entry")
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (e *Engine) ignored(name string) bool {
	for _, g := range e.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// RenameAll renames every entry of directory to "<position><extension>",
// printing the original name of each entry before renaming it.
//
// Renames are applied one at a time. If one fails, the entries already
// renamed stay renamed and the returned results list exactly those.
func (e *Engine) RenameAll(directory string) ([]types.RenameResult, error) {
	names, err := e.ListEntries(directory)
	if err != nil {
		return nil, err
	}

	results := make([]types.RenameResult, 0, len(names))
	for i, name := range names {
		target := TargetName(i, e.extension)
		fmt.Fprintln(e.out, name)

		if err := e.renameEntry(directory, name, target); err != nil {
			log.LogWithError(err).With(log.F("index", i)).Debug("Rename pass stopped")
			return results, err
		}
		results = append(results, types.RenameResult{
			Index:      i,
			SourceName: name,
			TargetName: target,
		})
	}

	log.LogWithFields(log.F("directory", directory), log.F("count", len(results))).Debug("Rename pass complete")
	return results, nil
}

func (e *Engine) renameEntry(directory, name, target string) error {
	src := filepath.Join(directory, name)
	dst := filepath.Join(directory, target)

	if name != target {
		// os.Rename replaces an existing file, so an unprocessed source
		// sitting at the target name has to be caught here.
		if err := checkTarget(src, dst); err != nil {
			return err
		}
	}

	log.LogWithFields(log.F("from", name), log.F("to", target)).Debug("Renaming entry")
	if err := e.rename(src, dst); err != nil {
		return errors.FromOS("failed to rename entry", src, err)
	}
	return nil
}

// checkTarget fails when dst names an existing entry other than src.
func checkTarget(src, dst string) error {
	dstInfo, err := os.Lstat(dst)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.FromOS("error checking target", dst, err)
	}

	// Case-insensitive filesystems report the source itself under the new name.
	if srcInfo, err := os.Lstat(src); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}
	return errors.NewFileError("target name already exists", dst, errors.TargetCollision, nil)
}
