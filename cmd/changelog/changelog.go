package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Release is a single version section of a changelog
type Release struct {
	Version string
	Date    string
	Yanked  bool
	// Sections groups the bullet items under their change type heading
	// (Added, Changed, ...) in document order
	Sections []Section
	// Notes is the raw markdown body of the release
	Notes string
}

// Section is one "### Added" style block within a release
type Section struct {
	Type  string
	Items []string
}

// Changelog represents a parsed Keep a Changelog file
type Changelog struct {
	Title    string
	Releases []Release
	Links    map[string]string
}

// Release finds a release by version string, with or without a 'v' prefix
func (c *Changelog) Release(version string) *Release {
	version = strings.TrimPrefix(version, "v")

	for i := range c.Releases {
		if strings.TrimPrefix(c.Releases[i].Version, "v") == version {
			return &c.Releases[i]
		}
	}
	return nil
}

// Latest returns the newest released version, skipping Unreleased
func (c *Changelog) Latest() *Release {
	for i := range c.Releases {
		if strings.EqualFold(c.Releases[i].Version, "unreleased") {
			continue
		}
		return &c.Releases[i]
	}
	return nil
}

// Parse parses a Keep a Changelog formatted markdown file
func Parse(source []byte) (*Changelog, error) {
	md := goldmark.New()
	reader := text.NewReader(source)
	ctx := parser.NewContext()
	doc := md.Parser().Parse(reader, parser.WithContext(ctx))

	changelog := &Changelog{
		Links: make(map[string]string),
	}

	// Extract link definitions from parser context
	for _, ref := range ctx.References() {
		changelog.Links[string(ref.Label())] = string(ref.Destination())
	}

	// Collect headings with their levels and source offsets from the AST
	type headingInfo struct {
		level int
		text  string
		start int
		stop  int
	}
	var headings []headingInfo

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := heading.Lines()
		start, stop := 0, 0
		if lines.Len() > 0 {
			start = lines.At(0).Start
			stop = lines.At(lines.Len() - 1).Stop
		}

		headings = append(headings, headingInfo{
			level: heading.Level,
			text:  plainText(heading, source),
			start: start,
			stop:  stop,
		})
		return ast.WalkContinue, nil
	})

	// Carve the source into release blocks at the h2 boundaries
	for i, h := range headings {
		if h.level == 1 && changelog.Title == "" {
			changelog.Title = h.text
		}
		if h.level != 2 {
			continue
		}

		end := len(source)
		for _, next := range headings[i+1:] {
			if next.level <= 2 {
				end = next.start
				break
			}
		}

		body := ""
		if h.stop < end {
			body = strings.TrimSpace(string(source[h.stop:end]))
		}

		changelog.Releases = append(changelog.Releases, parseRelease(h.text, body))
	}

	return changelog, nil
}

func parseRelease(heading, body string) Release {
	release := Release{Notes: body}
	release.Version, release.Date, release.Yanked = parseReleaseHeading(heading)

	// Group the bullet items under their change type heading
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "### "):
			release.Sections = append(release.Sections, Section{
				Type: strings.TrimSpace(strings.TrimPrefix(trimmed, "### ")),
			})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			if len(release.Sections) == 0 {
				continue
			}
			section := &release.Sections[len(release.Sections)-1]
			section.Items = append(section.Items, strings.TrimSpace(trimmed[2:]))
		}
	}

	return release
}

// parseReleaseHeading splits "## [1.0.0] - 2026-04-15 [YANKED]" style
// headings. The version brackets are already consumed by goldmark when a
// matching link definition exists.
func parseReleaseHeading(heading string) (version, date string, yanked bool) {
	heading = strings.TrimSpace(heading)

	if strings.HasSuffix(heading, "[YANKED]") {
		yanked = true
		heading = strings.TrimSpace(strings.TrimSuffix(heading, "[YANKED]"))
	}

	heading = strings.TrimPrefix(heading, "[")
	if idx := strings.Index(heading, "]"); idx != -1 {
		version = heading[:idx]
		rest := strings.TrimSpace(heading[idx+1:])
		if strings.HasPrefix(rest, "- ") {
			date = strings.TrimSpace(rest[2:])
		}
	} else if idx := strings.Index(heading, " - "); idx != -1 {
		version = strings.TrimSpace(heading[:idx])
		date = strings.TrimSpace(heading[idx+3:])
	} else {
		version = heading
	}

	return version, date, yanked
}

// plainText concatenates the text segments under node, descending into
// links so "[1.0.0]" headings keep their version text
func plainText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if textNode, ok := n.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
