// Package validate inspects candidate files for deployment-blocking and
// advisory issues: extension casing, suspicious filename characters and the
// trailing slash Oracle client tools require after a terminal END statement.
//
// Findings are data, not errors. A file that cannot be read yields a finding
// carrying the read error and the batch continues.
package validate
