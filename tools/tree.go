package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	ignore "github.com/sabhiram/go-gitignore"

	"projgen/config"
	"projgen/model"
)

// ignoreRule is a compiled .gitignore anchored at the directory holding it.
type ignoreRule struct {
	base string
	gi   *ignore.GitIgnore
}

type treeStats struct {
	dirs  int
	files int
	bytes uint64
}

func (t *Toolbox) listOutputStructure(ctx context.Context, args Arguments) (model.ToolResult, error) {
	if !dirExists(t.root) {
		return model.Failure("Output directory does not exist."), nil
	}

	var (
		b     strings.Builder
		stats treeStats
	)
	rules := loadIgnoreRule(nil, t.root)
	if err := writeTree(&b, t.root, "", 0, rules, &stats); err != nil {
		return model.Failuref("Could not read output folder: %v", err), nil
	}

	msg := fmt.Sprintf("Output folder structure:\n%s\n%d directories, %d files, %s",
		b.String(), stats.dirs, stats.files, humanize.Bytes(stats.bytes))
	return model.Success(msg), nil
}

// writeTree renders dir with box-drawing connectors. Rules from .gitignore files
// in the output root and in first-level project folders apply to everything
// below them; .git is always skipped.
func writeTree(b *strings.Builder, dir, prefix string, depth int, rules []ignoreRule, stats *treeStats) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	visible := entries[:0]
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.Name() == ".git" || ignored(rules, path, e.IsDir()) {
			continue
		}
		visible = append(visible, e)
	}

	for i, e := range visible {
		last := i == len(visible)-1
		connector, extension := "├── ", "│   "
		if last {
			connector, extension = "└── ", "    "
		}
		b.WriteString(prefix + connector + e.Name() + "\n")

		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			stats.dirs++
			childRules := rules
			if depth == 0 {
				childRules = loadIgnoreRule(rules, path)
			}
			if err := writeTree(b, path, prefix+extension, depth+1, childRules, stats); err != nil {
				return err
			}
			continue
		}

		stats.files++
		if info, err := e.Info(); err == nil {
			stats.bytes += uint64(info.Size())
		}
	}
	return nil
}

func loadIgnoreRule(rules []ignoreRule, dir string) []ignoreRule {
	path := filepath.Join(dir, ".gitignore")
	if !config.FileExists(path) {
		return rules
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		if config.Debug {
			config.DebugLog.Debug().Err(err).Str("path", path).Msg("skipping unreadable .gitignore")
		}
		return rules
	}
	out := make([]ignoreRule, len(rules), len(rules)+1)
	copy(out, rules)
	return append(out, ignoreRule{base: dir, gi: gi})
}

func ignored(rules []ignoreRule, path string, isDir bool) bool {
	for _, r := range rules {
		rel, err := filepath.Rel(r.base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if r.gi.MatchesPath(rel) || (isDir && r.gi.MatchesPath(rel+"/")) {
			return true
		}
	}
	return false
}
