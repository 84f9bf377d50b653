package tabular

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"recon-manager/core/reconcile"
)

// Parse reads one upload, choosing the parser from the extension.
// Reader failures are returned as *ParseError.
func Parse(f File) (*reconcile.Dataset, error) {
	if f.Open == nil {
		return nil, fileError(f.Source, "file is missing")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	var d *reconcile.Dataset
	switch f.Ext() {
	case ExtCSV:
		d, err = ParseCSV(rc, f.Name)
	case ExtXLSX:
		d, err = ParseXLSX(rc, f.Name)
	default:
		return nil, fileError(f.Source, fmt.Sprintf("%q has an unsupported extension", f.Name))
	}
	if err != nil {
		return nil, &ParseError{Source: f.Source, Filename: f.Name, Err: err}
	}
	return d, nil
}

// ParseAll validates every upload and then parses them concurrently.
// No file is opened unless all of them pass validation. The datasets are
// returned in the order of files.
func ParseAll(ctx context.Context, cfg Config, files ...File) ([]*reconcile.Dataset, error) {
	for _, f := range files {
		if err := Validate(cfg, f); err != nil {
			return nil, err
		}
	}

	out := make([]*reconcile.Dataset, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Parse(f)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
