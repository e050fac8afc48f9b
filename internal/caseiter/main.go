package caseiterinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Main is the entry point shared by the command-line tool and the library
// facade.
//
// ctx cancels package loading. wd is the working directory positions are
// reported relative to. env is the environment for the build system, tags
// the extra build tags, and tests includes test files in the loaded package.
// patterns must resolve to exactly one package.
//
// It returns generated file paths, relative to wd, mapped to their contents.
// The caller decides whether to write them.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, opts Options, patterns []string) (map[string][]byte, error) {
	pkg, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	g, err := New(pkg, opts)
	if err != nil {
		return nil, err
	}

	if err := g.Build(); err != nil {
		// The joined errors already carry positions; order them so the
		// report is stable.
		return nil, reorderErrors(err)
	}

	files, err := g.Generate()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("pkg %q has no Go files", pkg.PkgPath)
	}
	outDir := filepath.Dir(pkg.GoFiles[0])
	if rel, err := filepath.Rel(wd, outDir); err == nil {
		outDir = rel
	}

	outs := make(map[string][]byte, len(files))
	for name, code := range files {
		outs[filepath.Join(outDir, name)] = code
	}
	return outs, nil
}

// load loads the single package the patterns name.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	pkg, err := pick(pkgs, patterns)
	if err != nil {
		return nil, err
	}

	// Report compile errors with wd-relative positions.
	var errs error
	for _, perr := range pkg.Errors {
		if perr.Pos == "" {
			errs = errors.Join(errs, errors.New(perr.Msg))
			continue
		}

		path, rowcol, _ := strings.Cut(perr.Pos, ":")
		if rel, relErr := filepath.Rel(wd, path); relErr == nil {
			perr.Pos = rel + ":" + rowcol
		}
		errs = errors.Join(errs, perr)
	}
	if errs != nil {
		return nil, errs
	}

	return pkg, nil
}

// pick selects the generation target among the loaded roots. With tests on,
// go/packages returns the same package several times: plain, test-augmented,
// the external test package, and the test binary. Only the richest in-package
// view qualifies, and the patterns must resolve to exactly one package.
func pick(pkgs []*packages.Package, patterns []string) (*packages.Package, error) {
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	byPath := make(map[string]*packages.Package)
	var paths []string
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") || strings.HasSuffix(pkg.Name, "_test") {
			continue
		}

		prev, ok := byPath[pkg.PkgPath]
		if !ok {
			byPath[pkg.PkgPath] = pkg
			paths = append(paths, pkg.PkgPath)
			continue
		}
		// The test-augmented variant has a decorated ID and subsumes the
		// plain package.
		if len(pkg.ID) > len(prev.ID) {
			byPath[pkg.PkgPath] = pkg
		}
	}

	if len(paths) != 1 {
		return nil, fmt.Errorf("patterns %v matched %d packages; need exactly one", patterns, len(paths))
	}
	return byPath[paths[0]], nil
}

// reorderErrors flattens joined errors and sorts them by message. Messages
// start with their wd-relative position, so the order groups errors by file.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			list = append(list, u.Unwrap()...)
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
