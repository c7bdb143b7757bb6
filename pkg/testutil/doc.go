// Package testutil provides helpers shared by the muffin test suites.
//
// Key components:
//   - NewTestFS: afero-backed in-memory types.FS
//   - FailingFS: wraps a types.FS and injects errors for chosen paths
//   - MockImporter and MockInstaller: recording collaborators for the
//     seeding and installation phases
//   - CreateFile, CreateTree and friends: on-disk fixtures below t.TempDir()
package testutil
