package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"k8s.io/klog/v2"
)

// DefaultCacheSize comfortably exceeds the number of artifacts a bundle
// carries, so a run never evicts and re-reads a document.
const DefaultCacheSize = 64

// LogsDir is the bundle subdirectory holding node log files.
const LogsDir = "logs"

// ErrNotDir is returned by Open when the bundle root is not a directory.
var ErrNotDir = errors.New("bundle root is not a directory")

// entry is one cache slot. ok is false for missing and malformed artifacts,
// which are cached like any other result so they are reported once.
type entry struct {
	raw     json.RawMessage
	ok      bool
	decoded any
	badType bool
}

// Store resolves artifacts of one bundle directory. It is meant for a single
// sequential run.
type Store struct {
	root  string
	cache *lru.Cache[string, entry]
	logs  *logListing
}

type logListing struct {
	files []LogFile
	ok    bool
}

// Option configures a Store.
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize overrides DefaultCacheSize. Values <= 0 are ignored and
// smaller positive values are raised to MinCacheSize.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// Open returns a Store rooted at dir.
func Open(dir string, opts ...Option) (*Store, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize < MinCacheSize {
		klog.V(1).Infof("cache size %d raised to %d", o.cacheSize, MinCacheSize)
		o.cacheSize = MinCacheSize
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open bundle %q: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("open bundle %q: %w", dir, ErrNotDir)
	}
	cache, err := lru.New[string, entry](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create artifact cache: %w", err)
	}
	return &Store{root: dir, cache: cache}, nil
}

// Root returns the bundle directory.
func (s *Store) Root() string {
	return s.root
}

// Raw returns the document stored under name (a slash-separated path relative
// to the bundle root). The second result is false when the file is missing,
// unreadable, not valid JSON, or the JSON literal null.
func (s *Store) Raw(name string) (json.RawMessage, bool) {
	e := s.lookup(name)
	return e.raw, e.ok
}

func (s *Store) lookup(name string) entry {
	if e, ok := s.cache.Get(name); ok {
		klog.V(2).Infof("artifact %s served from cache", name)
		return e
	}
	e := s.load(name)
	s.cache.Add(name, e)
	return e
}

func (s *Store) load(name string) entry {
	path := filepath.Join(s.root, filepath.FromSlash(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			klog.V(1).Infof("artifact %s not present in bundle", name)
		} else {
			klog.Warningf("failed to read artifact %s: %v", name, err)
		}
		return entry{}
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		klog.Warningf("artifact %s is not valid JSON, treating it as missing: %v", name, err)
		return entry{}
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return entry{}
	}
	return entry{raw: raw, ok: true}
}

// decode returns the typed view of an artifact, decoding it at most once per
// cache lifetime.
func decode[T any](s *Store, name string) (*T, bool) {
	e := s.lookup(name)
	if !e.ok || e.badType {
		return nil, false
	}
	if v, ok := e.decoded.(*T); ok {
		return v, true
	}
	v := new(T)
	if err := json.Unmarshal(e.raw, v); err != nil {
		klog.Warningf("artifact %s does not have the expected layout, treating it as missing: %v", name, err)
		e.badType = true
		s.cache.Add(name, e)
		return nil, false
	}
	e.decoded = v
	s.cache.Add(name, e)
	return v, true
}

// LogFile describes one file of the bundle's logs directory.
type LogFile struct {
	Name       string
	Size       int64
	ModTime    time.Time
	Compressed bool
}

// Active reports whether the file is a plain log whose content is scanned.
func (f LogFile) Active() bool {
	return !f.Compressed
}

// IsLogFile reports whether name is a plain or gzip-compressed log file.
func IsLogFile(name string) bool {
	return strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz")
}

// LogFiles lists regular *.log and *.log.gz files of the logs directory,
// sorted by name. The second result is false when the directory is absent.
func (s *Store) LogFiles() ([]LogFile, bool) {
	if s.logs != nil {
		return s.logs.files, s.logs.ok
	}
	s.logs = s.listLogs()
	return s.logs.files, s.logs.ok
}

func (s *Store) listLogs() *logListing {
	dir := filepath.Join(s.root, LogsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			klog.Warningf("failed to list log directory: %v", err)
		}
		return &logListing{}
	}
	files := []LogFile{}
	for _, de := range entries {
		if !IsLogFile(de.Name()) || !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			klog.V(1).Infof("skipping log file %s: %v", de.Name(), err)
			continue
		}
		files = append(files, LogFile{
			Name:       de.Name(),
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			Compressed: strings.HasSuffix(de.Name(), ".gz"),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return &logListing{files: files, ok: true}
}

// OpenLog opens a file of the logs directory for streaming.
func (s *Store) OpenLog(name string) (io.ReadCloser, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid log file name %q", name)
	}
	f, err := os.Open(filepath.Join(s.root, LogsDir, name))
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", name, err)
	}
	return f, nil
}
