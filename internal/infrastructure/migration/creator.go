package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// MigrationFile is a created up/down pair
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration writes the next sequential NNNNNN_name.{up,down}.sql pair
func CreateMigration(migrationsDir, name string) (*MigrationFile, error) {
	clean := sanitizeName(name)
	if clean == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}
	existing, err := ListMigrations(migrationsDir)
	if err != nil {
		return nil, err
	}

	next := 1
	if n := len(existing); n > 0 {
		last, _, _ := strings.Cut(existing[n-1], "_")
		if v, err := strconv.Atoi(last); err == nil {
			next = v + 1
		}
	}
	version := fmt.Sprintf("%06d", next)
	base := version + "_" + clean

	mf := &MigrationFile{
		Version:  version,
		Name:     clean,
		UpPath:   filepath.Join(migrationsDir, base+".up.sql"),
		DownPath: filepath.Join(migrationsDir, base+".down.sql"),
	}
	if err := os.WriteFile(mf.UpPath, []byte("-- "+clean+"\n\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := os.WriteFile(mf.DownPath, []byte("-- rollback "+clean+"\n\n"), 0o644); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}
	return mf, nil
}

// sanitizeName lower-cases name and collapses separators into single underscores
func sanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// ListMigrations returns the sorted base names of the up migrations in a directory
func ListMigrations(migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if base, ok := strings.CutSuffix(e.Name(), ".up.sql"); ok && !e.IsDir() {
			out = append(out, base)
		}
	}
	sort.Strings(out)
	return out, nil
}
