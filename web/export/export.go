// Package export writes the site as plain files for static hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/sebicas/site/web/router"
	"github.com/sebicas/site/web/static"
	"github.com/sebicas/site/web/views"
	"github.com/sebicas/site/web/views/pages"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Dir  string
	Year int
	// Live keeps the websocket script in exported pages. Static hosts have no
	// /live endpoint, so it is off unless asked for.
	Live bool
}

type File struct {
	Path  string
	Bytes int64
}

type Result struct {
	Files []File
}

func (r Result) Total() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Bytes
	}
	return n
}

func (r Result) String() string {
	return fmt.Sprintf("%d files, %s", len(r.Files), humanize.Bytes(uint64(r.Total())))
}

type page struct {
	out  string
	page router.Page
	path string
}

func targets() []page {
	var out []page
	for _, r := range router.Routes() {
		file := "index.html"
		if r.Path != "/" {
			file = filepath.Join(strings.TrimPrefix(r.Path, "/"), "index.html")
		}
		out = append(out, page{out: file, page: r.Page, path: r.Path})
	}
	return append(out, page{out: "404.html", page: router.NotFound, path: "/404"})
}

// Run renders every page and copies the embedded assets into opts.Dir.
func Run(ctx context.Context, opts Options) (Result, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Result{}, err
	}

	var (
		mu  sync.Mutex
		res Result
	)
	record := func(path string, n int) {
		mu.Lock()
		res.Files = append(res.Files, File{Path: path, Bytes: int64(n)})
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, p := range targets() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cfg := pages.PageConfig{
				Title:       p.page.Title(),
				Description: pages.HomeDescription(),
				Year:        opts.Year,
				Live:        opts.Live,
				TargetMenu:  true,
			}

			var buf bytes.Buffer
			if err := views.Component(pages.Layout(cfg, p.page.View(p.path))).Render(ctx, &buf); err != nil {
				return fmt.Errorf("render %s: %w", p.path, err)
			}
			if err := write(filepath.Join(opts.Dir, p.out), buf.Bytes()); err != nil {
				return err
			}
			record(p.out, buf.Len())
			return nil
		})
	}

	g.Go(func() error {
		return fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b, err := fs.ReadFile(static.FS, path)
			if err != nil {
				return err
			}
			out := filepath.Join("static", path)
			if err := write(filepath.Join(opts.Dir, out), b); err != nil {
				return err
			}
			record(out, len(b))
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	sort.Slice(res.Files, func(i, j int) bool { return res.Files[i].Path < res.Files[j].Path })
	return res, nil
}

func write(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
