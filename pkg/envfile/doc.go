// Package envfile merges resolved values into a default .env file.
//
// The merge is textual: for every variable parsed from the file that has a
// resolved value, the first line assigning KEY=default is rewritten to
// KEY=resolved. Comments, blank lines, ordering and variables without a
// resolved value come through untouched, which a parse-and-serialize round
// trip would not guarantee.
//
// Rewrites match a whole assignment line (optionally after "export ", up
// to an optional trailing comment), so a default that happens to appear
// inside another line, or as a prefix of a longer value, is never
// targeted. Values are read without ${VAR} expansion and lines that are
// not assignments are skipped.
package envfile
