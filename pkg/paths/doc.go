// Package paths provides path handling for muffin.
//
// It covers two concerns:
//
//   - Resolving the roots generation reads from: the template tree and the
//     sample data tree. Both default to directories under the XDG data home
//     ($XDG_DATA_HOME/muffin/template and $XDG_DATA_HOME/muffin/data).
//   - Transforming template-relative paths into destination paths, applying
//     the dotfile naming convention.
//
// # Dotfile naming
//
// Packaging pipelines often drop hidden files, so templates spell a leading
// dot as a leading underscore. Transform turns that underscore back into a
// dot:
//
//	_env          -> .env
//	a/_b.txt      -> a/.b.txt
//	_gitignore    -> .gitignore
//	my_file.txt   -> my_file.txt
//
// Only the final path segment is considered, and only a single leading
// underscore is replaced.
package paths
