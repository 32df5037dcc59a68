package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/normalisers/tokens"
)

const (
	// IntroductionHeading names the section before the first heading.
	IntroductionHeading = "Introduction"

	// EmptyHeading replaces a heading marker with no text.
	EmptyHeading = "Section"
)

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

type section struct {
	heading string
	body    string
}

// Chunk splits a markdown document into paragraph chunks scoped by heading.
// Paragraphs without any token are skipped. Chunk returns a fresh slice and
// never modifies its input.
func Chunk(content, sourceID string) []domain.Chunk {
	var chunks []domain.Chunk
	for _, sec := range sections(content) {
		anchor := tokens.Slugify(sec.heading)
		for _, para := range paragraphPattern.Split(sec.body, -1) {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			text := spacePattern.ReplaceAllString(para, " ")
			toks := tokens.Tokenize(text)
			if len(toks) == 0 {
				continue
			}
			chunks = append(chunks, domain.Chunk{
				ID:         sourceID + "-" + sec.heading + "-" + strconv.Itoa(len(chunks)),
				SourceID:   sourceID,
				Heading:    sec.heading,
				Anchor:     anchor,
				Text:       text,
				Tokens:     toks,
				TokenCount: len(toks),
			})
		}
	}
	return chunks
}

// sections groups lines under their nearest preceding heading.
func sections(content string) []section {
	var (
		out     []section
		heading = IntroductionHeading
		buf     []string
	)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		out = append(out, section{heading: heading, body: strings.TrimSpace(strings.Join(buf, "\n"))})
		buf = nil
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			heading = strings.TrimSpace(m[2])
			if heading == "" {
				heading = EmptyHeading
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return out
}

// Title returns the first level-one heading, or a title derived from name.
func Title(content, name string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	title := strings.TrimSuffix(name, ".md")
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return title
}
