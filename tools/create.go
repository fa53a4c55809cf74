package tools

import (
	"context"
	"os"
	"path/filepath"

	"projgen/config"
	"projgen/model"
)

func (t *Toolbox) createDirectory(ctx context.Context, args Arguments) (model.ToolResult, error) {
	name := args.String("directory_name")
	dir, err := t.resolveInOutput(name)
	if err != nil {
		return model.Failure(err.Error()), nil
	}

	existed := dirExists(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.Failuref("Could not create directory '%s': %v", name, err), nil
	}

	if config.Debug {
		config.DebugLog.Debug().Str("dir", dir).Bool("existed", existed).Msg("create_directory_in_output")
	}
	if existed {
		return model.Successf("Directory '%s' already exists in '%s' folder.", name, t.rootName()), nil
	}
	return model.Successf("Directory '%s' created in '%s' folder.", name, t.rootName()), nil
}

func (t *Toolbox) createFile(ctx context.Context, args Arguments) (model.ToolResult, error) {
	dirArg := args.String("directory_path")
	name := args.String("file_name")

	dir, err := t.resolveInOutput(dirArg)
	if err != nil {
		return model.Failure(err.Error()), nil
	}
	if name == "" {
		return model.Failure("file_name must not be empty"), nil
	}
	path, err := t.resolveInOutput(filepath.Join(dir, name))
	if err != nil {
		return model.Failure(err.Error()), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return model.Failuref("Could not create directory '%s': %v", dirArg, err), nil
	}
	if err := os.WriteFile(path, []byte(args.String("content")), 0o644); err != nil {
		return model.Failuref("Could not write file '%s': %v", name, err), nil
	}

	if config.Debug {
		config.DebugLog.Debug().Str("path", path).Msg("create_file_in_directory")
	}
	return model.Successf("File '%s' created in '%s'.", name, dirArg), nil
}
