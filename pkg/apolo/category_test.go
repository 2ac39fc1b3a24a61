package apolo

import "testing"

func TestCategories_CanonicalOrder(t *testing.T) {
	want := []Category{
		CategoryScripts,
		CategoryPackages,
		CategoryPackageBodies,
		CategoryProcedures,
		CategoryFunctions,
		CategoryViews,
		CategoryTriggers,
	}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCategoryForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{".sql", CategoryScripts},
		{".pks", CategoryPackages},
		{".pkb", CategoryPackageBodies},
		{".prc", CategoryProcedures},
		{".fnc", CategoryFunctions},
		{".vw", CategoryViews},
		{".trg", CategoryTriggers},
	}

	for _, tt := range tests {
		c, ok := CategoryForExtension(tt.ext)
		if !ok {
			t.Errorf("CategoryForExtension(%q) not found", tt.ext)
			continue
		}
		if c != tt.want {
			t.Errorf("CategoryForExtension(%q) = %v, want %v", tt.ext, c, tt.want)
		}
	}
}

func TestCategoryForExtension_Unrecognized(t *testing.T) {
	for _, ext := range []string{".seq", ".fmb", ".rdf", ".txt", ""} {
		if c, ok := CategoryForExtension(ext); ok {
			t.Errorf("CategoryForExtension(%q) = %v, want no category", ext, c)
		}
	}
}

func TestCategory_Headers(t *testing.T) {
	// Header strings are part of the manifest contract: byte for byte.
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryScripts, "-- Ejecucion de scripts sql"},
		{CategoryPackages, "-- Ejecucion de script creacion de packages"},
		{CategoryPackageBodies, "-- Ejecucion de script creacion de packagesBodies"},
		{CategoryProcedures, "-- Ejecucion de script creacion de procedures"},
		{CategoryFunctions, "-- Ejecucion de script creacion de funciones"},
		{CategoryViews, "-- Ejecucion de script creacion de views"},
		{CategoryTriggers, "-- Ejecucion de script creacion de triggers"},
	}

	for _, tt := range tests {
		if got := tt.cat.Header(); got != tt.want {
			t.Errorf("%v.Header() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestCategory_Folders(t *testing.T) {
	want := map[Category]string{
		CategoryScripts:       "scripts",
		CategoryPackages:      "packages",
		CategoryPackageBodies: "packagesbodies",
		CategoryProcedures:    "procedures",
		CategoryFunctions:     "functions",
		CategoryViews:         "views",
		CategoryTriggers:      "triggers",
	}

	for cat, folder := range want {
		if got := cat.Folder(); got != folder {
			t.Errorf("%v.Folder() = %q, want %q", cat, got, folder)
		}
	}
}

func TestCategory_GroupPerFolder(t *testing.T) {
	for _, cat := range Categories() {
		want := cat == CategoryScripts
		if got := cat.GroupPerFolder(); got != want {
			t.Errorf("%v.GroupPerFolder() = %v, want %v", cat, got, want)
		}
	}
}

func TestCategory_String_Invalid(t *testing.T) {
	bad := Category(99)
	if bad.IsValid() {
		t.Error("Category(99) should not be valid")
	}
	if got := bad.String(); got != "Unknown(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsDBScriptExtension(t *testing.T) {
	for _, ext := range []string{".sql", ".pks", ".pkb", ".prc", ".fnc", ".vw", ".trg", ".seq"} {
		if !IsDBScriptExtension(ext) {
			t.Errorf("IsDBScriptExtension(%q) = false", ext)
		}
	}
	for _, ext := range []string{".fmb", ".rdf", ".txt"} {
		if IsDBScriptExtension(ext) {
			t.Errorf("IsDBScriptExtension(%q) = true", ext)
		}
	}
}

func TestNeedsSlashTerminator(t *testing.T) {
	requires := []string{".pks", ".pkb", ".prc", ".fnc", ".trg"}
	for _, ext := range requires {
		if !NeedsSlashTerminator(ext) {
			t.Errorf("NeedsSlashTerminator(%q) = false", ext)
		}
	}

	// Plain scripts, views and sequences are explicitly excluded.
	excluded := []string{".sql", ".vw", ".seq", ".fmb"}
	for _, ext := range excluded {
		if NeedsSlashTerminator(ext) {
			t.Errorf("NeedsSlashTerminator(%q) = true", ext)
		}
	}
}

func TestAllowedExtensions(t *testing.T) {
	exts := AllowedExtensions()
	if len(exts) != 10 {
		t.Fatalf("AllowedExtensions() len = %d, want 10", len(exts))
	}

	seen := map[string]bool{}
	for _, ext := range exts {
		if seen[ext] {
			t.Errorf("duplicate extension %q", ext)
		}
		seen[ext] = true
	}
	for _, ext := range []string{".sql", ".seq", ".fmb", ".rdf"} {
		if !seen[ext] {
			t.Errorf("missing extension %q", ext)
		}
	}
}
