// Package enumerator lists source files of a language under a root location.
package enumerator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/ambiguous/inspector/repository"
)

const (
	gitIgnoreFile = ".gitignore"
	ignoreFile    = ".ignore"
)

// irregular modes are never admitted, reading a named pipe would block
const irregular = os.ModeNamedPipe | os.ModeSocket | os.ModeDevice | os.ModeCharDevice | os.ModeIrregular

// Entry represents an enumerated file
type Entry struct {
	URL  string // storage location
	Path string // path relative to the enumerated root
}

// Enumerator walks a storage tree and selects matching files
type Enumerator struct {
	fs       afs.Service
	matcher  *Matcher
	detector *repository.Detector
	logger   *slog.Logger
}

// New creates an enumerator
func New(fs afs.Service, matcher *Matcher, logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Enumerator{
		fs:       fs,
		matcher:  matcher,
		detector: repository.New(),
		logger:   logger,
	}
}

// ignoreRule holds compiled ignore file with the directory its patterns are relative to
type ignoreRule struct {
	dir    string
	ignore *gitignore.GitIgnore
}

// ignoreRules is ordered from the outermost directory down
type ignoreRules []*ignoreRule

func (r ignoreRules) matches(location string, isDir bool) bool {
	for _, rule := range r {
		if !strings.HasPrefix(location, rule.dir+"/") && rule.dir != "/" {
			continue
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(location, rule.dir), "/")
		if rule.ignore.MatchesPath(rel) {
			return true
		}
		if isDir && rule.ignore.MatchesPath(rel+"/") {
			return true
		}
	}
	return false
}

// walk carries state shared by one Enumerate call
type walk struct {
	git     bool
	entries []*Entry
}

// Enumerate walks root and calls fn for each matching file in walk order
func (e *Enumerator) Enumerate(ctx context.Context, root string, fn func(ctx context.Context, entry *Entry) error) error {
	var rules ignoreRules
	state := &walk{}
	if url.Scheme(root, file.Scheme) == file.Scheme {
		location := root
		if strings.Contains(location, "://") {
			location = url.Path(location)
		}
		abs, err := filepath.Abs(location)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", root, err)
		}
		root = abs
		if repo, err := e.detector.DetectRepository(root); err == nil && repo.Kind == "git" {
			state.git = true
			for _, dir := range repo.Ancestors(root) {
				children, err := e.list(ctx, url.Normalize(dir, file.Scheme))
				if err != nil {
					continue
				}
				rules = e.appendIgnoreRules(ctx, rules, filepath.ToSlash(dir), children, state.git)
			}
		}
	}
	e.logger.Debug("enumerating", "root", root, "language", e.matcher.Language(), "git", state.git)
	if err := e.walkDir(ctx, state, url.Normalize(root, file.Scheme), "", rules); err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}
	for _, entry := range state.entries {
		if err := fn(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// walkDir lists one directory and descends into its subdirectories, file content is never opened
func (e *Enumerator) walkDir(ctx context.Context, state *walk, dirURL, parent string, rules ignoreRules) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	children, err := e.list(ctx, dirURL)
	if err != nil {
		if parent == "" {
			return err
		}
		e.logger.Debug("skipping unreadable directory", "path", parent, "error", err)
		return nil
	}
	dir := locationPath(dirURL)
	rules = e.appendIgnoreRules(ctx, rules, dir, children, state.git)
	for _, object := range children {
		name := object.Name()
		relPath := path.Join(parent, name)
		if isHidden(name) {
			continue
		}
		if rules.matches(path.Join(dir, name), object.IsDir()) {
			e.logger.Debug("skipping ignored path", "path", relPath)
			continue
		}
		if object.IsDir() {
			if err := e.walkDir(ctx, state, object.URL(), relPath, rules); err != nil {
				return err
			}
			continue
		}
		if object.Mode()&irregular != 0 || !e.matcher.Match(name) {
			continue
		}
		state.entries = append(state.entries, &Entry{URL: object.URL(), Path: relPath})
	}
	return nil
}

// list returns directory children sorted by name
func (e *Enumerator) list(ctx context.Context, dirURL string) ([]storage.Object, error) {
	objects, err := e.fs.List(ctx, dirURL)
	if err != nil {
		return nil, err
	}
	children := make([]storage.Object, 0, len(objects))
	for _, object := range objects {
		if object.IsDir() && url.Equals(dirURL, object.URL()) {
			continue
		}
		children = append(children, object)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	return children, nil
}

// appendIgnoreRules compiles ignore files found among dir children, .gitignore is honored only inside a git repository
func (e *Enumerator) appendIgnoreRules(ctx context.Context, rules ignoreRules, dir string, children []storage.Object, git bool) ignoreRules {
	result := rules
	for _, child := range children {
		name := child.Name()
		if child.IsDir() || !(name == ignoreFile || (git && name == gitIgnoreFile)) {
			continue
		}
		data, err := e.fs.DownloadWithURL(ctx, child.URL())
		if err != nil {
			e.logger.Debug("skipping ignore file", "path", child.URL(), "error", err)
			continue
		}
		if len(result) == len(rules) {
			result = append(ignoreRules{}, rules...)
		}
		result = append(result, &ignoreRule{dir: dir, ignore: gitignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)})
	}
	return result
}

// Read returns entry content
func (e *Enumerator) Read(ctx context.Context, entry *Entry) ([]byte, error) {
	return e.fs.DownloadWithURL(ctx, entry.URL)
}

func locationPath(URL string) string {
	return path.Clean(url.Path(URL))
}

func isHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}
