// Package seed implements the optional sample data phase that runs before
// file generation.
package seed

import (
	"context"
	"os"
	"strings"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/rs/zerolog"
)

// databaseFields are the answer suffixes forwarded to the importer as
// DB_* variables.
var databaseFields = []string{"host", "name", "user", "password"}

// Importer loads sample data files into an external data store. It must
// return only once the import has finished.
type Importer interface {
	Import(ctx context.Context, files []string, env types.Overrides) error
}

// Seeder lists the sample data, derives connection variables from the
// answers and hands both to an Importer.
type Seeder struct {
	fs       types.FS
	root     string
	importer Importer
	logger   zerolog.Logger
}

// NewSeeder creates a Seeder reading sample data from root.
func NewSeeder(fsys types.FS, root string, importer Importer) *Seeder {
	return &Seeder{
		fs:       fsys,
		root:     root,
		importer: importer,
		logger:   logging.GetLogger("seed"),
	}
}

// DeriveOverrides turns db_host, db_name, db_user and db_password answers
// into DB_HOST, DB_NAME, DB_USER and DB_PASSWORD. Missing or empty answers
// are left out.
func DeriveOverrides(answers types.Answers) types.Overrides {
	overrides := types.Overrides{}
	for _, field := range databaseFields {
		key := "db_" + field
		value := answers.String(key)
		if value == "" {
			continue
		}
		overrides[strings.ToUpper(key)] = value
	}
	return overrides
}

// ListFiles returns every regular file below root in lexical walk order.
// The root and directories are not included.
func ListFiles(fsys types.FS, root string) ([]string, error) {
	var files []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTraversal, "failed to walk sample data %s", root).
			WithDetail("root", root)
	}
	return files, nil
}

// Seed runs the sample data phase and returns the overrides it derived.
// Overrides are only returned after the importer has completed, so the
// caller can hand them to the environment merger.
func (s *Seeder) Seed(ctx context.Context, answers types.Answers) (types.Overrides, error) {
	done := logging.LogOperationStart(s.logger, "seed")
	defer done()

	files, err := ListFiles(s.fs, s.root)
	if err != nil {
		return nil, err
	}

	overrides := DeriveOverrides(answers)

	s.logger.Info().
		Str("root", s.root).
		Int("files", len(files)).
		Strs("variables", keys(overrides)).
		Msg("Importing sample data")

	if err := s.importer.Import(ctx, files, overrides); err != nil {
		return nil, errors.Wrap(err, errors.ErrSeed, "sample data import failed")
	}

	return overrides, nil
}

func keys(o types.Overrides) []string {
	out := make([]string, 0, len(o))
	for _, field := range databaseFields {
		k := strings.ToUpper("db_" + field)
		if _, ok := o[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
