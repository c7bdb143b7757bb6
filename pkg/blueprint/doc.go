// Package blueprint discovers the entries of a template tree and
// materializes them into a target directory.
//
// Discovery walks the template depth-first in lexical order, so the same
// template always yields the same sequence. Materialization processes that
// sequence strictly in order and stops at the first I/O failure; files
// written before the failure are left in place.
package blueprint
