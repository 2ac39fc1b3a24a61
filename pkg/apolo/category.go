package apolo

import "fmt"

// Category is one of the seven recognized database object kinds. The zero
// value is CategoryScripts; use CategoryForExtension to classify files.
//
// The declaration order is the canonical manifest block order and must not
// change: deployment tooling depends on scripts running before packages,
// packages before bodies, and so on.
type Category int

const (
	CategoryScripts Category = iota
	CategoryPackages
	CategoryPackageBodies
	CategoryProcedures
	CategoryFunctions
	CategoryViews
	CategoryTriggers
)

// categorySpec holds the fixed attributes of one category.
type categorySpec struct {
	name           string // destination folder, lower-case
	header         string // verbatim manifest section header
	extension      string // the single extension owned by the category
	groupPerFolder bool   // manifest entries grouped per original folder
}

// categorySpecs is indexed by Category. Header strings are part of the
// manifest.txt contract and must be emitted byte for byte.
var categorySpecs = [...]categorySpec{
	CategoryScripts:       {"scripts", "-- Ejecucion de scripts sql", ".sql", true},
	CategoryPackages:      {"packages", "-- Ejecucion de script creacion de packages", ".pks", false},
	CategoryPackageBodies: {"packagesbodies", "-- Ejecucion de script creacion de packagesBodies", ".pkb", false},
	CategoryProcedures:    {"procedures", "-- Ejecucion de script creacion de procedures", ".prc", false},
	CategoryFunctions:     {"functions", "-- Ejecucion de script creacion de funciones", ".fnc", false},
	CategoryViews:         {"views", "-- Ejecucion de script creacion de views", ".vw", false},
	CategoryTriggers:      {"triggers", "-- Ejecucion de script creacion de triggers", ".trg", false},
}

// Categories returns all categories in canonical manifest order.
func Categories() []Category {
	return []Category{
		CategoryScripts,
		CategoryPackages,
		CategoryPackageBodies,
		CategoryProcedures,
		CategoryFunctions,
		CategoryViews,
		CategoryTriggers,
	}
}

// IsValid returns true if the Category is a defined value.
func (c Category) IsValid() bool {
	return c >= CategoryScripts && c <= CategoryTriggers
}

// String returns the category name, which doubles as its destination folder.
func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
	return categorySpecs[c].name
}

// Folder returns the destination folder name under database/plsql/<schema>/.
func (c Category) Folder() string {
	return categorySpecs[c].name
}

// Header returns the fixed manifest section header line.
func (c Category) Header() string {
	return categorySpecs[c].header
}

// Extension returns the single file extension the category owns.
func (c Category) Extension() string {
	return categorySpecs[c].extension
}

// GroupPerFolder reports whether manifest entries for this category are
// grouped per original source folder (true only for scripts).
func (c Category) GroupPerFolder() bool {
	return categorySpecs[c].groupPerFolder
}

// extensionToCategory is derived from categorySpecs; extension→category is a
// function, so each recognized extension maps to exactly one category.
var extensionToCategory = func() map[string]Category {
	m := make(map[string]Category, len(categorySpecs))
	for i, spec := range categorySpecs {
		m[spec.extension] = Category(i)
	}
	return m
}()

// CategoryForExtension maps a lower-cased extension (including the dot) to
// its category. Classification is extension-only: a recognized extension
// keeps its category regardless of the folder it was found in, and .sql is
// always scripts because scripts is the only category keyed to .sql.
// Unrecognized extensions return ok=false, never an error.
func CategoryForExtension(ext string) (Category, bool) {
	c, ok := extensionToCategory[ext]
	return c, ok
}

// CategoryOf classifies a candidate file. Pure function of the extension.
func CategoryOf(f CandidateFile) (Category, bool) {
	return CategoryForExtension(f.Extension)
}

// Ancillary extensions recognized for copying but never present in the
// manifest.
const (
	ExtSequence = ".seq" // validated like DB scripts, no category and no copy target
	ExtForm     = ".fmb" // Oracle Forms binary, copied under fuentes/forma
	ExtReport   = ".rdf" // Oracle Reports binary, copied under fuentes/reporte
)

// IsDBScriptExtension reports whether ext belongs to the core DB-script set
// that the validator inspects (the seven category extensions plus .seq).
func IsDBScriptExtension(ext string) bool {
	if _, ok := extensionToCategory[ext]; ok {
		return true
	}
	return ext == ExtSequence
}

// NeedsSlashTerminator reports whether files with this extension must end
// their final PL/SQL block with a lone slash line. Plain scripts, views and
// sequences are explicitly excluded.
func NeedsSlashTerminator(ext string) bool {
	switch ext {
	case ".pks", ".pkb", ".prc", ".fnc", ".trg":
		return true
	default:
		return false
	}
}

// AllowedExtensions returns the collector allow-list in a stable order:
// everything eligible for copying and/or manifest inclusion.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(categorySpecs)+3)
	for _, spec := range categorySpecs {
		exts = append(exts, spec.extension)
	}
	return append(exts, ExtSequence, ExtForm, ExtReport)
}
