package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/slnkit/internal/ctxlog"
	"github.com/vk/slnkit/internal/fsutil"
	"github.com/vk/slnkit/internal/solution"
)

// Run executes the selected mode against every discovered solution file.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "path", a.config.Path)

	files, err := a.discover()
	if err != nil {
		return err
	}
	a.logger.Debug("Solution files discovered.", "count", len(files))

	if a.config.Mode == ModeFormat && len(files) > 1 {
		return fmt.Errorf("format mode expects a single solution file, found %d under %s", len(files), a.config.Path)
	}

	for _, file := range files {
		if err := a.runFile(ctx, file); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// discover resolves the configured path into the list of solution files to
// process.
func (a *App) discover() ([]string, error) {
	info, err := os.Stat(a.config.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", a.config.Path, err)
	}
	if !info.IsDir() {
		return []string{a.config.Path}, nil
	}

	files, err := fsutil.FindFilesByExtension(a.config.Path, ".sln")
	if err != nil {
		return nil, fmt.Errorf("failed to find solution files in %s: %w", a.config.Path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .sln files found under %s", a.config.Path)
	}
	return files, nil
}

// runFile parses one solution file and applies the selected mode to it.
func (a *App) runFile(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing solution file.", "file", path)

	doc, err := a.parseFile(path)
	if err != nil {
		return err
	}

	switch a.config.Mode {
	case ModeCheck:
		a.logger.Info("Solution is well-formed.",
			"file", path,
			"projects", len(doc.Projects),
			"global_sections", len(doc.GlobalSections),
		)
		return nil
	case ModeList:
		return a.listProjects(doc)
	case ModeWrite:
		return a.writeBack(path, doc)
	default:
		return a.writeFormatted(doc)
	}
}

// parseFile opens and parses a single solution file. The stream is released
// as soon as the parse returns; the document does not retain it.
func (a *App) parseFile(path string) (*solution.SolutionDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := solution.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// listProjects prints one line per project: name, path, GUID, and the
// project type (alias-resolved when the config file names it).
func (a *App) listProjects(doc *solution.SolutionDocument) error {
	for _, p := range doc.Projects {
		typeName := solution.FormatGUID(p.TypeGUID)
		if alias, ok := a.opts.TypeAliases[p.TypeGUID]; ok {
			typeName = alias
		}
		if _, err := fmt.Fprintf(a.outW, "%s\t%s\t%s\t%s\n",
			p.Name(), p.Path(), solution.FormatGUID(p.GUID), typeName); err != nil {
			return err
		}
	}
	return nil
}

// writeFormatted emits the normalized document to the output path or writer.
func (a *App) writeFormatted(doc *solution.SolutionDocument) error {
	text := doc.TextIndent(a.opts.Indent)
	if a.config.OutputPath != "" {
		if err := os.WriteFile(a.config.OutputPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", a.config.OutputPath, err)
		}
		return nil
	}
	_, err := fmt.Fprint(a.outW, text)
	return err
}

// writeBack rewrites a solution file in place with its normalized form,
// preserving the file's permission bits.
func (a *App) writeBack(path string, doc *solution.SolutionDocument) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	text := doc.TextIndent(a.opts.Indent)
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	a.logger.Info("Solution rewritten.", "file", path, "projects", len(doc.Projects))
	return nil
}
