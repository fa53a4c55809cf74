package tools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultCommandTimeout = 10 * time.Second

// Options configures the built-in tool set.
type Options struct {
	// OutputDir is where generated projects live. Relative paths are resolved
	// against the working directory at construction time.
	OutputDir string
	// CommandTimeout is the run_command default when the model gives none.
	CommandTimeout time.Duration
	// Stdout receives live command output. Nil discards it.
	Stdout io.Writer
}

// Toolbox carries the state shared by the built-in tools. The output root is
// absolute, so tools keep working after change_directory moves the process.
type Toolbox struct {
	root           string
	commandTimeout time.Duration
	out            io.Writer
}

func NewToolbox(opts Options) (*Toolbox, error) {
	dir := opts.OutputDir
	if dir == "" {
		dir = "output"
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	timeout := opts.CommandTimeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}

	return &Toolbox{root: root, commandTimeout: timeout, out: out}, nil
}

// NewBuiltinRegistry returns a registry holding every built-in tool.
func NewBuiltinRegistry(opts Options) (*Registry, error) {
	tb, err := NewToolbox(opts)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, spec := range tb.Specs() {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Specs lists the built-in tools in catalog order.
func (t *Toolbox) Specs() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "create_directory_in_output",
			Description: "Creates a directory in the output folder if it doesn't already exist.",
			Params: []Param{
				{Name: "directory_name", Type: TypeString, Description: "Directory to create, relative to the output folder", Required: true},
			},
			Fn: t.createDirectory,
		},
		{
			Name:        "is_npm_package_installed",
			Description: "Check if a package is installed using npm.",
			Params: []Param{
				{Name: "package_name", Type: TypeString, Description: "npm package name", Required: true},
			},
			Fn: t.isNpmPackageInstalled,
		},
		{
			Name:        "create_file_in_directory",
			Description: "Creates a file in the specified directory with the given content.",
			Params: []Param{
				{Name: "directory_path", Type: TypeString, Description: "Directory relative to the output folder", Required: true},
				{Name: "file_name", Type: TypeString, Description: "Name of the file to create", Required: true},
				{Name: "content", Type: TypeString, Description: "Full file content", Required: true},
			},
			Fn: t.createFile,
		},
		{
			Name:        "list_output_directories",
			Description: "Lists all directories in the output folder.",
			Fn:          t.listOutputDirectories,
		},
		{
			Name:        "list_output_structure",
			Description: "Gives context about the output folder structure.",
			Fn:          t.listOutputStructure,
		},
		{
			Name:        "read_file_content",
			Description: "Reads the content of a file.",
			Params: []Param{
				{Name: "file_path", Type: TypeString, Description: "Path of the file to read", Required: true},
			},
			Fn: t.readFileContent,
		},
		{
			Name:        "run_command",
			Description: "Runs a shell command and returns the result.",
			Params: []Param{
				{Name: "command", Type: TypeString, Description: "Shell command line", Required: true},
				{Name: "cwd", Type: TypeString, Description: "Directory to run the command in"},
				{Name: "timeout", Type: TypeNumber, Description: "Maximum duration in seconds"},
			},
			Fn: t.runCommand,
		},
		{
			Name:        "change_directory",
			Description: "Changes the working directory to a folder inside the output folder.",
			Params: []Param{
				{Name: "path", Type: TypeString, Description: "Directory relative to the output folder", Required: true},
			},
			Fn: t.changeDirectory,
		},
	}
}

// resolveInOutput maps a model-supplied path into the output root. A leading
// component equal to the output folder name is dropped so "output/app" and "app"
// name the same directory. Paths that escape the root are rejected.
func (t *Toolbox) resolveInOutput(p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(p)))

	var full string
	if filepath.IsAbs(clean) {
		full = clean
	} else {
		parts := strings.Split(clean, string(filepath.Separator))
		if parts[0] == filepath.Base(t.root) {
			parts = parts[1:]
		}
		full = filepath.Join(append([]string{t.root}, parts...)...)
	}

	rel, err := filepath.Rel(t.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q is outside the output folder", p)
	}
	return full, nil
}

func (t *Toolbox) rootName() string {
	return filepath.Base(t.root)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
