package migrations

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// UpStatements returns the statements of every up migration in dir, in
// version order.
func UpStatements(dir string) ([]string, error) {
	files, err := fs.Glob(FS, dir+"/*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var stmts []string
	for _, name := range files {
		content, err := fs.ReadFile(FS, name)
		if err != nil {
			return nil, err
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}
