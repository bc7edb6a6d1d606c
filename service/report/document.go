package report

import (
	"strconv"
	"strings"
)

// reportTemplateVersion is embedded in every rendered document.
const reportTemplateVersion = "1.0"

// companyName brands all generated documents.
const companyName = "Zava"

// maxListedElements caps how many concept elements a report lists.
const maxListedElements = 10

// Section is one titled block of a rendered document. Body holds markdown
// paragraphs; Items renders as a numbered list after the body.
type Section struct {
	Heading string
	Body    []string
	Items   []string
}

// Document is the structured model every report is built from, so document
// composition can be tested independently of the exact wording.
type Document struct {
	Title    string
	Subtitle string
	Sections []*Section
}

// Section returns a section by heading, nil when absent.
func (d *Document) Section(heading string) *Section {
	for _, section := range d.Sections {
		if section.Heading == heading {
			return section
		}
	}
	return nil
}

// Markdown renders the document to its final text. The leading section is
// attached to the title header; subsequent sections are divided by rules.
func (d *Document) Markdown() string {
	header := "# " + d.Title
	if d.Subtitle != "" {
		header += "\n## " + d.Subtitle
	}
	blocks := make([]string, 0, len(d.Sections))
	for _, section := range d.Sections {
		blocks = append(blocks, section.render())
	}
	if len(blocks) == 0 {
		return header + "\n"
	}
	return header + "\n\n" + strings.Join(blocks, "\n\n---\n\n") + "\n"
}

func (s *Section) render() string {
	var parts []string
	if s.Heading != "" {
		parts = append(parts, "## "+s.Heading)
	}
	parts = append(parts, s.Body...)
	if len(s.Items) > 0 {
		items := make([]string, 0, len(s.Items))
		for i, item := range s.Items {
			items = append(items, strconv.Itoa(i+1)+". "+item)
		}
		parts = append(parts, strings.Join(items, "\n"))
	}
	return strings.Join(parts, "\n\n")
}
