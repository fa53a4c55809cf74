package tools

import (
	"context"
	"os"

	"projgen/model"
)

// changeDirectory moves the process into a folder under the output root. The
// agent loop restores the original directory when the request ends.
func (t *Toolbox) changeDirectory(ctx context.Context, args Arguments) (model.ToolResult, error) {
	name := args.String("path")
	dir, err := t.resolveInOutput(name)
	if err != nil {
		return model.Failure(err.Error()), nil
	}
	if !dirExists(dir) {
		return model.Failuref("Directory '%s' does not exist.", name), nil
	}
	if err := os.Chdir(dir); err != nil {
		return model.Failuref("Could not change directory to '%s': %v", name, err), nil
	}
	return model.Successf("Changed directory to '%s'.", name), nil
}
