package report

import (
	"fmt"

	"github.com/ChangJu-Ahn/conceptgate/internal/clock"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
)

const (
	headerTimeFormat = "January 2, 2006 at 3:04 PM"
	footerDateFormat = "January 2, 2006"
)

// noElementsPlaceholder replaces an otherwise empty design-element list.
const noElementsPlaceholder = "No specific design elements automatically identified"

// NewApprovedDocument builds the development report for an approved concept.
// The structure is fixed; the only branching is "has feedback" and
// "has concept elements".
func NewApprovedDocument(meta *concept.Metadata, marketAnalysis, designAnalysis, productionAnalysis, approvalFeedback string) *Document {
	now := clock.Now()
	fileName := "Unknown"
	totalSlides := 0
	if meta != nil {
		if meta.FileName != "" {
			fileName = meta.FileName
		}
		totalSlides = meta.TotalSlides
	}

	doc := &Document{
		Title:    fmt.Sprintf("%s Clothing Concept Analysis Report", companyName),
		Subtitle: "Status: APPROVED FOR DEVELOPMENT",
	}

	doc.Sections = append(doc.Sections, &Section{
		Body: []string{
			fmt.Sprintf("**Report Generated:** %s", now.Format(headerTimeFormat)),
			fmt.Sprintf("**Concept File:** %s", fileName),
			fmt.Sprintf("**Analysis Version:** %s", reportTemplateVersion),
		},
	})

	summary := &Section{
		Heading: "Executive Summary",
		Body: []string{
			fmt.Sprintf("This clothing concept has been **APPROVED** for development by %s's design team. "+
				"The concept demonstrates strong market potential, design innovation, and production feasibility "+
				"that aligns with %s's brand vision and quality standards.", companyName, companyName),
		},
	}
	if approvalFeedback != "" {
		summary.Body = append(summary.Body, fmt.Sprintf("**Additional Notes:** %s", approvalFeedback))
	}
	doc.Sections = append(doc.Sections, summary)

	overview := &Section{
		Heading: "Concept Overview",
		Body: []string{
			fmt.Sprintf("**Total Presentation Slides:** %d", totalSlides),
			fmt.Sprintf("**Concept Elements Identified:** %d", meta.ElementCount()),
			"### Key Design Elements Presented",
		},
	}
	elements := meta.Elements()
	if len(elements) > maxListedElements {
		elements = elements[:maxListedElements]
	}
	if len(elements) > 0 {
		overview.Items = elements
	} else {
		overview.Body = append(overview.Body, "- "+noElementsPlaceholder)
	}
	doc.Sections = append(doc.Sections, overview)

	doc.Sections = append(doc.Sections,
		&Section{Heading: "Market Analysis & Fashion Trends", Body: []string{marketAnalysis}},
		&Section{Heading: "Design & Aesthetic Evaluation", Body: []string{designAnalysis}},
		&Section{Heading: "Production & Manufacturing Assessment", Body: []string{productionAnalysis}},
		nextStepsSection(),
		riskSection(),
		&Section{
			Heading: "Approval Details",
			Body: []string{
				fmt.Sprintf("**Decision Date:** %s", now.Format(footerDateFormat)),
				"**Decision Status:** APPROVED",
				fmt.Sprintf("**Approved by:** %s Design Review Board", companyName),
				"This concept has been approved for progression to the next development phase. " +
					"Regular review checkpoints have been scheduled to ensure continued alignment " +
					fmt.Sprintf("with %s's strategic objectives and market conditions.", companyName),
			},
		},
		&Section{
			Body: []string{
				fmt.Sprintf("*Report generated by %s Clothing Concept Analysis System*", companyName),
				"*For internal use only - Contains proprietary design and market information*",
			},
		},
	)
	return doc
}

func nextStepsSection() *Section {
	return &Section{
		Heading: "Next Steps for Development",
		Body: []string{
			"### Immediate Actions (Next 30 days)",
			"1. **Design Refinement**\n" +
				"   - Create detailed technical sketches\n" +
				"   - Finalize color palette and material specifications\n" +
				"   - Develop size range and fit guidelines",
			"2. **Prototype Development**\n" +
				"   - Source materials and fabrics\n" +
				"   - Create initial samples for testing\n" +
				"   - Conduct fit and wear testing with target demographic",
			"3. **Market Validation**\n" +
				"   - Conduct focus groups with target customers\n" +
				"   - Analyze competitor positioning\n" +
				"   - Validate pricing strategy",
			"### Medium-term Goals (60-90 days)",
			"1. **Production Planning**\n" +
				"   - Finalize manufacturing partner selection\n" +
				"   - Establish quality control standards\n" +
				"   - Plan initial production quantities",
			"2. **Marketing Strategy**\n" +
				"   - Develop brand messaging and positioning\n" +
				"   - Create marketing materials and campaign concepts\n" +
				"   - Plan launch timeline and channels",
			"### Long-term Vision (6+ months)",
			"1. **Collection Expansion**\n" +
				"   - Identify opportunities for concept extension\n" +
				"   - Plan seasonal variations and updates\n" +
				"   - Consider complementary product lines",
		},
	}
}

func riskSection() *Section {
	return &Section{
		Heading: "Risk Assessment & Mitigation",
		Body: []string{
			"### Low Risk Areas",
			fmt.Sprintf("- Strong alignment with %s brand identity\n", companyName) +
				"- Clear target market identification\n" +
				"- Feasible production requirements",
			"### Areas Requiring Attention",
			"- Market timing considerations\n" +
				"- Material sourcing reliability\n" +
				"- Competitive landscape evolution",
			"### Recommended Monitoring",
			"- Fashion trend evolution\n" +
				"- Customer feedback during development\n" +
				"- Production cost fluctuations",
		},
	}
}
