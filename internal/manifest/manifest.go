// Package manifest renders the deployment manifest from a classified
// candidate set. Generation is a pure function: no I/O, no clock, and
// byte-identical output for equal input multisets.
package manifest

import (
	"path"
	"sort"
	"strings"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

// Generate renders manifest.txt content for the given schema and candidate
// set. Only categorized files appear; forms, reports and sequences are left
// to the layout copier.
//
// Entries are grouped by the file's original containing folder. Folders are
// ordered by the numeric leading prefix of the folder's base name (folders
// without one sort last, ties by folder path), then each folder emits its
// category blocks in canonical order. A blank line precedes every folder's
// first block except the very first block overall.
func Generate(schemaName string, files []apolo.CandidateFile) string {
	var lines []string
	lines = append(lines, "SCHEMA="+strings.ToUpper(schemaName))
	lines = append(lines, "")

	type group struct {
		folder string
		byCat  map[apolo.Category][]apolo.CandidateFile
	}

	groups := make(map[string]*group)
	for _, f := range files {
		cat, ok := apolo.CategoryOf(f)
		if !ok {
			continue
		}
		folder := path.Dir(f.RelativePath)
		g, exists := groups[folder]
		if !exists {
			g = &group{folder: folder, byCat: make(map[apolo.Category][]apolo.CandidateFile)}
			groups[folder] = g
		}
		g.byCat[cat] = append(g.byCat[cat], f)
	}

	folders := make([]string, 0, len(groups))
	for folder := range groups {
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool {
		pi := apolo.NumericPrefixOf(path.Base(folders[i]))
		pj := apolo.NumericPrefixOf(path.Base(folders[j]))
		if pi != pj {
			return pi < pj
		}
		return folders[i] < folders[j]
	})

	schemaLower := strings.ToLower(schemaName)
	firstBlockOverall := true

	for _, folder := range folders {
		g := groups[folder]
		firstBlockInFolder := true

		for _, cat := range apolo.Categories() {
			entries := g.byCat[cat]
			if len(entries) == 0 {
				continue
			}

			if !firstBlockOverall && firstBlockInFolder {
				lines = append(lines, "")
			}
			lines = append(lines, cat.Header())
			firstBlockOverall = false
			firstBlockInFolder = false

			sortEntries(cat, entries)
			for _, f := range entries {
				lines = append(lines, path.Join(apolo.PLSQLRoot, schemaLower, cat.Folder(), f.Filename))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// sortEntries orders one (folder, category) block. Package blocks put specs
// before bodies; everything else is numeric prefix then filename.
func sortEntries(cat apolo.Category, entries []apolo.CandidateFile) {
	packageBlock := cat == apolo.CategoryPackages || cat == apolo.CategoryPackageBodies
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if packageBlock {
			aBody := a.Extension == ".pkb"
			bBody := b.Extension == ".pkb"
			if aBody != bBody {
				return !aBody
			}
		}
		if a.NumericPrefix != b.NumericPrefix {
			return a.NumericPrefix < b.NumericPrefix
		}
		return a.Filename < b.Filename
	})
}

// HasEntries reports whether at least one file would appear in the manifest.
// Callers skip writing manifest.txt entirely when this is false.
func HasEntries(files []apolo.CandidateFile) bool {
	for _, f := range files {
		if _, ok := apolo.CategoryOf(f); ok {
			return true
		}
	}
	return false
}

// CategorizedCount returns how many files would appear in the manifest.
func CategorizedCount(files []apolo.CandidateFile) int {
	n := 0
	for _, f := range files {
		if _, ok := apolo.CategoryOf(f); ok {
			n++
		}
	}
	return n
}
