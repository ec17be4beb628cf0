package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/slnkit/internal/ctxlog"
	"github.com/vk/slnkit/internal/solution"
	"github.com/zclconf/go-cty/cty"
)

// Options holds the tool-level settings a config file may override.
type Options struct {
	// Indent is the indentation unit used when serializing documents.
	Indent string
	// LogLevel and LogFormat override the CLI defaults when set.
	LogLevel  string
	LogFormat string
	// TypeAliases maps a project-type GUID to a friendly display name.
	TypeAliases map[uuid.UUID]string
}

// Default returns the options used when no config file is present.
func Default() *Options {
	return &Options{
		Indent:      solution.DefaultIndent,
		TypeAliases: map[uuid.UUID]string{},
	}
}

// hclFile is the decoding target for the top-level config structure.
type hclFile struct {
	Indent       *string           `hcl:"indent,optional"`
	LogLevel     *string           `hcl:"log_level,optional"`
	LogFormat    *string           `hcl:"log_format,optional"`
	ProjectTypes []*hclProjectType `hcl:"project_type,block"`
}

// hclProjectType is one `project_type "<name>" { guid = ... }` block.
type hclProjectType struct {
	Name string `hcl:"name,label"`
	GUID string `hcl:"guid"`
}

// Load parses and evaluates the config file at path on top of the defaults.
func Load(ctx context.Context, path string) (*Options, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading tool configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var decoded hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	opts := Default()
	if decoded.Indent != nil {
		opts.Indent = *decoded.Indent
	}
	if decoded.LogLevel != nil {
		opts.LogLevel = *decoded.LogLevel
	}
	if decoded.LogFormat != nil {
		opts.LogFormat = *decoded.LogFormat
	}
	for _, pt := range decoded.ProjectTypes {
		guid, err := solution.ParseGUID(pt.GUID)
		if err != nil {
			return nil, fmt.Errorf("project_type %q: %w", pt.Name, err)
		}
		opts.TypeAliases[guid] = pt.Name
	}

	logger.Debug("Tool configuration loaded.", "aliases", len(opts.TypeAliases))
	return opts, nil
}

// evalContext builds the expression scope for config files: a single `env`
// object exposing the process environment as strings.
func evalContext() *hcl.EvalContext {
	vals := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vals[key] = cty.StringVal(value)
	}
	env := cty.EmptyObjectVal
	if len(vals) > 0 {
		env = cty.ObjectVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
