package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

func candidates(relPaths ...string) []apolo.CandidateFile {
	var out []apolo.CandidateFile
	for _, rel := range relPaths {
		out = append(out, apolo.NewCandidateFile("/src/"+rel, rel))
	}
	return out
}

func TestGenerateSingleFolder(t *testing.T) {
	files := candidates(
		"A/10_create_table.sql",
		"A/02_pkg.pks",
		"A/02_pkg.pkb",
	)

	got := Generate("HR", files)

	want := strings.Join([]string{
		"SCHEMA=HR",
		"",
		"-- Ejecucion de scripts sql",
		"database/plsql/hr/scripts/10_create_table.sql",
		"-- Ejecucion de script creacion de packages",
		"database/plsql/hr/packages/02_pkg.pks",
		"-- Ejecucion de script creacion de packagesBodies",
		"database/plsql/hr/packagesbodies/02_pkg.pkb",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestGenerateFolderOrderingAndBlankLines(t *testing.T) {
	files := candidates(
		"20_post/zz_cleanup.sql",
		"10_pre/01_tables.sql",
		"10_pre/02_emp.prc",
		"misc/v_emp.vw",
	)

	got := Generate("hr", files)

	want := strings.Join([]string{
		"SCHEMA=HR",
		"",
		"-- Ejecucion de scripts sql",
		"database/plsql/hr/scripts/01_tables.sql",
		"-- Ejecucion de script creacion de procedures",
		"database/plsql/hr/procedures/02_emp.prc",
		"",
		"-- Ejecucion de scripts sql",
		"database/plsql/hr/scripts/zz_cleanup.sql",
		"",
		"-- Ejecucion de script creacion de views",
		"database/plsql/hr/views/v_emp.vw",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestGenerateWithinCategoryOrdering(t *testing.T) {
	files := candidates(
		"A/10_c.sql",
		"A/2_b.sql",
		"A/alpha.sql",
		"A/1_a.sql",
	)

	got := Generate("HR", files)

	want := strings.Join([]string{
		"SCHEMA=HR",
		"",
		"-- Ejecucion de scripts sql",
		"database/plsql/hr/scripts/1_a.sql",
		"database/plsql/hr/scripts/2_b.sql",
		"database/plsql/hr/scripts/10_c.sql",
		"database/plsql/hr/scripts/alpha.sql",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestGenerateExcludesUncategorized(t *testing.T) {
	files := candidates(
		"A/01_tables.sql",
		"A/seq_emp.seq",
		"A/Main.fmb",
		"A/report.rdf",
	)

	got := Generate("HR", files)

	assert.NotContains(t, got, "seq_emp.seq")
	assert.NotContains(t, got, "Main.fmb")
	assert.NotContains(t, got, "report.rdf")
	assert.Contains(t, got, "database/plsql/hr/scripts/01_tables.sql")
}

func TestGenerateEmpty(t *testing.T) {
	got := Generate("hr", candidates("A/readme.seq"))

	assert.Equal(t, "SCHEMA=HR\n", got)
	assert.False(t, HasEntries(candidates("A/readme.seq")))
}

func TestGenerateDeterministic(t *testing.T) {
	forward := candidates(
		"10_pre/01_tables.sql",
		"10_pre/emp_pkg.pks",
		"10_pre/emp_pkg.pkb",
		"20_post/02_perms.sql",
	)
	reversed := make([]apolo.CandidateFile, len(forward))
	for i, f := range forward {
		reversed[len(forward)-1-i] = f
	}

	assert.Equal(t, Generate("HR", forward), Generate("HR", reversed))
}

func TestHasEntriesAndCount(t *testing.T) {
	files := candidates("A/01.sql", "A/x.fmb", "A/p.prc")

	assert.True(t, HasEntries(files))
	assert.Equal(t, 2, CategorizedCount(files))
	assert.False(t, HasEntries(nil))
}
