// Package filter decides which files batch ingest should touch and which
// extracted content counts as a search hit.
package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Config holds the raw filter inputs. Filenames and Content are regex
// patterns, compiled case-insensitive. Extensions is an allowlist and may
// be given with or without the leading dot.
type Config struct {
	Filenames  []string
	Extensions []string
	Content    []string
}

type Filter struct {
	FilenameRegex []*regexp.Regexp
	ContentRegex  []*regexp.Regexp
	ExcludeRegex  []*regexp.Regexp
	Extensions    map[string]bool
	Config        Config
}

func New(config Config) (*Filter, error) {
	f := &Filter{
		Config:     config,
		Extensions: make(map[string]bool),
	}

	for _, p := range config.Filenames {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		f.FilenameRegex = append(f.FilenameRegex, re)
	}

	for _, p := range config.Content {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, err
		}
		f.ContentRegex = append(f.ContentRegex, re)
	}

	// Default exclusions are literal path fragments, quoted before compile.
	for _, p := range DefaultExcludes {
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(p))
		if err == nil {
			f.ExcludeRegex = append(f.ExcludeRegex, re)
		}
	}

	for _, e := range config.Extensions {
		ext := strings.ToLower(e)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.Extensions[ext] = true
	}

	return f, nil
}

// CheckExtension returns true if the file extension is in the allowlist,
// or if no allowlist was configured.
func (f *Filter) CheckExtension(filename string) bool {
	if len(f.Config.Extensions) == 0 {
		return true
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = strings.ToLower(filename[idx:])
	}
	return f.Extensions[ext]
}

// CheckFilename returns true if any filename pattern matches. With no
// patterns configured it returns false; callers treat the empty pattern
// list as "no filename filtering" themselves.
func (f *Filter) CheckFilename(filename string) bool {
	for _, re := range f.FilenameRegex {
		if re.MatchString(filename) {
			return true
		}
	}
	return false
}

// CheckContent returns whether any content pattern matches the extracted
// text, plus the first matching line trimmed to a snippet. With no patterns
// configured every document matches.
func (f *Filter) CheckContent(text string) (bool, string) {
	if len(f.Config.Content) == 0 {
		return true, ""
	}

	lines := strings.Split(text, "\n")
	for _, re := range f.ContentRegex {
		for _, line := range lines {
			if re.MatchString(line) {
				return true, truncateSnippet(strings.TrimSpace(line))
			}
		}
	}
	return false, ""
}

// truncateSnippet caps a snippet at 80 bytes, backing up to a rune
// boundary so multibyte characters are never cut in half.
func truncateSnippet(snippet string) string {
	if len(snippet) <= 80 {
		return snippet
	}
	cut := 80
	for cut > 0 && !utf8.RuneStart(snippet[cut]) {
		cut--
	}
	return snippet[:cut] + "..."
}

// CheckExclude returns true if the path matches any exclusion pattern.
func (f *Filter) CheckExclude(path string) bool {
	for _, re := range f.ExcludeRegex {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
