package enumerator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Ruby is the language the analyzer selects by default
const Ruby = "Ruby"

// fileType lists the file name patterns of a language
type fileType struct {
	extensions []string
	filenames  []string
}

// fileTypes narrows enry's linguist tables for languages whose extension list is too broad,
// e.g. linguist assigns .spec and .fcgi to Ruby.
var fileTypes = map[string]fileType{
	Ruby: {
		extensions: []string{".rb", ".gemspec"},
		filenames:  []string{"Gemfile", "Rakefile", ".irbrc"},
	},
}

// Matcher selects files of one language by extension or well-known file name (Gemfile, Rakefile)
type Matcher struct {
	language   string
	extensions map[string]bool
	filenames  map[string]bool
}

// NewMatcher creates a matcher for the named language, it fails when the language has no known extensions
func NewMatcher(language string) (*Matcher, error) {
	extensions := enry.GetLanguageExtensions(language)
	if len(extensions) == 0 {
		return nil, fmt.Errorf("unsupported file type: %q", language)
	}
	ret := &Matcher{language: language, extensions: map[string]bool{}}
	if known, ok := fileTypes[language]; ok {
		extensions = known.extensions
		ret.filenames = map[string]bool{}
		for _, name := range known.filenames {
			ret.filenames[name] = true
		}
	}
	for _, ext := range extensions {
		ret.extensions[ext] = true
	}
	return ret, nil
}

// Language returns matched language name
func (m *Matcher) Language() string {
	return m.language
}

// Match returns true if file name belongs to the matcher language
func (m *Matcher) Match(name string) bool {
	if m.filenames != nil {
		return m.extensions[filepath.Ext(name)] || m.filenames[name]
	}
	if m.extensions[strings.ToLower(filepath.Ext(name))] {
		return true
	}
	language, _ := enry.GetLanguageByFilename(name)
	return language == m.language
}
