package tools

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"projgen/model"
)

func (t *Toolbox) listOutputDirectories(ctx context.Context, args Arguments) (model.ToolResult, error) {
	entries, err := os.ReadDir(t.root)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Failure("Output directory does not exist."), nil
	}
	if err != nil {
		return model.ToolResult{}, err
	}

	dirs := []string{}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return model.Success(dirs), nil
}

// readFileContent reads a path relative to the working directory, falling back
// to the output folder. Reads are not confined to the output folder.
func (t *Toolbox) readFileContent(ctx context.Context, args Arguments) (model.ToolResult, error) {
	name := args.String("file_path")
	if name == "" {
		return model.Failure("file_path must not be empty"), nil
	}

	path := filepath.FromSlash(name)
	if _, err := os.Stat(path); err != nil && !filepath.IsAbs(path) {
		if inOutput, rerr := t.resolveInOutput(path); rerr == nil {
			path = inOutput
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Failuref("Could not read file '%s': %v", name, err), nil
	}
	return model.Success(string(data)), nil
}
