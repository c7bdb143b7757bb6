// Package install hands a freshly generated site to the dependency
// installer and reports the result.
//
// Installation failure does not undo generation: the files on disk are
// complete, only the dependencies are missing. Installers that print a
// known benign diagnostic (by default the placeholder package name
// "example@1.0.0" used by the template) are treated as successful even
// when they exit non-zero.
package install
