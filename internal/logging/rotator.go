package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
	logFileName = "mosaic.log"
	gzipExt     = ".gz"
)

// RotateOptions bounds the size and number of log files kept. Zero values
// disable the matching limit.
type RotateOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// RotatingFile appends to dir/mosaic.log. A write that would grow the file
// past MaxSizeMB first moves it to mosaic.log.1, shifting older backups to
// .2, .3 and so on.
type RotatingFile struct {
	mu    sync.Mutex
	dir   string
	opts  RotateOptions
	limit int64

	file *os.File
	size int64
}

// NewRotatingFile opens dir/mosaic.log for appending, creating it if needed.
func NewRotatingFile(dir string, opts RotateOptions) (*RotatingFile, error) {
	f := &RotatingFile{
		dir:   dir,
		opts:  opts,
		limit: int64(opts.MaxSizeMB) << 20,
	}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *RotatingFile) path() string {
	return filepath.Join(f.dir, logFileName)
}

func (f *RotatingFile) open() error {
	file, err := os.OpenFile(f.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	f.file = file
	f.size = info.Size()
	return nil
}

// Write implements io.Writer. A closed file is reopened.
func (f *RotatingFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		if err := f.open(); err != nil {
			return 0, err
		}
	}
	if f.limit > 0 && f.size > 0 && f.size+int64(len(p)) > f.limit {
		if err := f.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := f.file.Write(p)
	f.size += int64(n)
	return n, err
}

// Close closes the current file.
func (f *RotatingFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

type backup struct {
	index int
	name  string
	gz    bool
}

func (b backup) renamed(index int) string {
	name := logFileName + "." + strconv.Itoa(index)
	if b.gz {
		name += gzipExt
	}
	return name
}

func (f *RotatingFile) rotate() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	f.file = nil

	var errs []error
	backups := f.backups()
	cutoff := time.Time{}
	if f.opts.MaxAgeDays > 0 {
		cutoff = time.Now().AddDate(0, 0, -f.opts.MaxAgeDays)
	}

	// Highest index first so every rename target is free.
	for i := len(backups) - 1; i >= 0; i-- {
		b := backups[i]
		src := filepath.Join(f.dir, b.name)
		if f.expired(b, src, cutoff) {
			errs = append(errs, removeIfExists(src))
			continue
		}
		errs = append(errs, os.Rename(src, filepath.Join(f.dir, b.renamed(b.index+1))))
	}

	first := filepath.Join(f.dir, logFileName+".1")
	if err := os.Rename(f.path(), first); err != nil {
		errs = append(errs, fmt.Errorf("rotate log file: %w", err))
	} else if f.opts.Compress {
		if err := gzipFile(first); err == nil {
			errs = append(errs, os.Remove(first))
		}
	}

	if err := f.open(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (f *RotatingFile) expired(b backup, path string, cutoff time.Time) bool {
	if f.opts.MaxBackups > 0 && b.index >= f.opts.MaxBackups {
		return true
	}
	if cutoff.IsZero() {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.ModTime().Before(cutoff)
}

// backups lists mosaic.log.N[.gz] sorted by N.
func (f *RotatingFile) backups() []backup {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil
	}

	var out []backup
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rest, ok := strings.CutPrefix(e.Name(), logFileName+".")
		if !ok {
			continue
		}
		rest, gz := strings.CutSuffix(rest, gzipExt)
		index, err := strconv.Atoi(rest)
		if err != nil || index < 1 {
			continue
		}
		out = append(out, backup{index: index, name: e.Name(), gz: gz})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+gzipExt, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
