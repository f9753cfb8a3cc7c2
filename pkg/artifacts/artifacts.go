package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-getter"
	"github.com/optum/avsetctl/pkg/config"
	"github.com/otiai10/copy"
	"github.com/spf13/afero"
)

const (
	OriginalTemplatePrefix = "OriginalTemplate"
	NewTemplatePrefix      = "NewTemplate"
	RedeployTemplatePrefix = "RedeployTemplate"
)

// Writer keeps the audit trail of an operation: the exported template and the template that was
// (or would have been) deployed.
type Writer struct {
	Fs  afero.Fs
	Dir string
}

// FileName returns the audit file name for prefix at ts.
func FileName(prefix string, ts time.Time) string {
	return fmt.Sprintf("%s-%s.json", prefix, ts.Format(config.TimestampLayout))
}

// WriteOriginal writes the exported template and returns its path.
func (w Writer) WriteOriginal(ts time.Time, data []byte) (string, error) {
	return w.write(FileName(OriginalTemplatePrefix, ts), data)
}

// WriteNew writes the transformed template and returns its path.
func (w Writer) WriteNew(ts time.Time, data []byte) (string, error) {
	return w.write(FileName(NewTemplatePrefix, ts), data)
}

func (w Writer) write(name string, data []byte) (string, error) {
	if err := w.Fs.MkdirAll(w.Dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, name)
	if err := afero.WriteFile(w.Fs, path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// Stage places the template at source in the audit directory and returns its path and content.
// source is a local path or any go-getter source (https://, s3::, git::...). Staging copies through
// the OS filesystem, so Fs must be backed by it.
func (w Writer) Stage(ctx context.Context, source string, ts time.Time) (string, []byte, error) {
	if err := w.Fs.MkdirAll(w.Dir, 0755); err != nil {
		return "", nil, err
	}

	dst := filepath.Join(w.Dir, FileName(RedeployTemplatePrefix, ts))

	if info, err := os.Stat(source); err == nil {
		if info.IsDir() {
			return "", nil, fmt.Errorf("template source %s is a directory", source)
		}
		if err := copy.Copy(source, dst); err != nil {
			return "", nil, err
		}
	} else if err := getter.GetFile(dst, source, getter.WithContext(ctx)); err != nil {
		return "", nil, fmt.Errorf("fetching template %s: %w", source, err)
	}

	data, err := afero.ReadFile(w.Fs, dst)
	if err != nil {
		return "", nil, err
	}

	return dst, data, nil
}
