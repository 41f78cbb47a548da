package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
)

// CompileSass runs sassc on sassPath and waits for it to finish. A launch
// failure, a non-zero exit or a missing output file is a *CompileError.
func (g *Generator) CompileSass(ctx context.Context, sassPath, outputPath string) error {
	if g.compileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.compileTimeout)
		defer cancel()
	}

	g.logger.Debug("compiling SCSS", "compiler", g.compiler, "source", sassPath, "output", outputPath)

	_, stderr, err := g.runner.Run(ctx, g.compiler, []string{sassPath, outputPath}, nil)
	if err != nil {
		cerr := &CompileError{
			Compiler: g.compiler,
			Source:   sassPath,
			ExitCode: executor.ExitCode(err),
			Stderr:   strings.TrimSpace(string(stderr)),
			Err:      err,
		}
		g.logger.Error("failed to compile SCSS source files using external sassc program", "error", cerr)
		return cerr
	}

	if _, err := os.Stat(outputPath); err != nil {
		cerr := &CompileError{
			Compiler: g.compiler,
			Source:   sassPath,
			ExitCode: 0,
			Err:      fmt.Errorf("no output produced: %w", err),
		}
		g.logger.Error("sassc exited without producing CSS", "error", cerr)
		return cerr
	}

	return nil
}

// ResolveCompiler returns path if it names an existing file, otherwise the
// location of a binary with the same base name on $PATH. If neither exists
// path is returned unchanged and the failure surfaces when compiling.
func ResolveCompiler(path string) string {
	if path == "" {
		path = DefaultCompiler
	}
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if found, err := exec.LookPath(filepath.Base(path)); err == nil {
		return found
	}
	return path
}
