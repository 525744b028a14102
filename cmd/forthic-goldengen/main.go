// Command forthic-goldengen regenerates the expected-output fixtures
// under testdata/golden/ by actually running forthic over each
// checked-in *.3rd source file. It is a development tool, not part of
// the language runtime: every fixture gets its own Context, run
// concurrently via errgroup, so the single-threaded-per-Context
// invariant of the evaluator is never touched by the generator's own
// concurrency.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/forthic-lang/forthic"
	"golang.org/x/sync/errgroup"
)

const (
	fixtureExt = ".3rd"
	goldenExt  = ".golden"
)

func main() {
	dir := flag.String("dir", "testdata/golden", "directory of *.3rd fixtures")
	check := flag.Bool("check", false, "report mismatches instead of writing golden files")
	flag.Parse()

	if err := run(context.Background(), *dir, *check); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string, check bool) error {
	fixtures, err := fixturePaths(dir)
	if err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(ctx)
	mismatches := make([]string, len(fixtures))

	for i, path := range fixtures {
		i, path := i, path
		eg.Go(func() error {
			got, err := renderFixture(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			goldenPath := strings.TrimSuffix(path, fixtureExt) + goldenExt
			if check {
				want, err := os.ReadFile(goldenPath)
				if err != nil {
					return fmt.Errorf("%s: %w", goldenPath, err)
				}
				if string(want) != got {
					mismatches[i] = goldenPath
				}
				return nil
			}
			return os.WriteFile(goldenPath, []byte(got), 0o644)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	var stale []string
	for _, m := range mismatches {
		if m != "" {
			stale = append(stale, m)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("stale golden fixtures: %s", strings.Join(stale, ", "))
	}
	return nil
}

// renderFixture parses and runs one fixture to completion in its own
// Context, then renders the final stack the way "forthic run" does.
func renderFixture(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	prog, err := forthic.Parse(filepath.Base(path), src)
	if err != nil {
		return "", err
	}
	defer prog.Release()

	ctx := forthic.NewContext()
	defer ctx.Close()

	if err := ctx.Exec(prog); err != nil {
		return "", err
	}
	return ctx.Render() + "\n", nil
}

func fixturePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fixtureExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
