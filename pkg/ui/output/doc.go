// Package output renders generation progress for the command line.
//
// A UI shows a spinner while a long-running collaborator works (sample
// data import, dependency installation) and prints success, error and info
// lines. Interactive terminals get pterm spinners and lipgloss styles
// loaded from styles/styles.yaml; anything else gets plain text so logs
// and pipes stay readable.
package output
