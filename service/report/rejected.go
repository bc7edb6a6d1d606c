package report

import (
	"fmt"

	"github.com/ChangJu-Ahn/conceptgate/internal/clock"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
)

// genericImprovementFeedback stands in when the reviewer left no
// constructive feedback.
const genericImprovementFeedback = "We encourage you to continue developing your design skills and stay informed about current fashion trends and market demands."

// NewRejectedDocument builds the decision-notification letter for a rejected
// concept. The alternative-suggestions section is omitted entirely when no
// suggestions are supplied.
func NewRejectedDocument(meta *concept.Metadata, rejectionReasons, constructiveFeedback, alternativeSuggestions string) *Document {
	now := clock.Now()
	fileName := "Your Concept"
	if meta != nil && meta.FileName != "" {
		fileName = meta.FileName
	}

	doc := &Document{
		Title: fmt.Sprintf("%s Clothing Concept Review - Decision Notification", companyName),
	}

	doc.Sections = append(doc.Sections, &Section{
		Body: []string{
			fmt.Sprintf("**Date:** %s", now.Format(footerDateFormat)),
			fmt.Sprintf("**Subject:** Re: Clothing Concept Submission - %s", fileName),
		},
	})

	doc.Sections = append(doc.Sections, &Section{
		Heading: "Dear Concept Designer,",
		Body: []string{
			fmt.Sprintf("Thank you for submitting your clothing concept to %s. We appreciate "+
				"the time and creativity you invested in developing this proposal. Our design review "+
				"team has carefully evaluated your submission against our current strategic priorities, "+
				"market positioning, and production capabilities.", companyName),
			"## Review Decision: Not Selected for Development",
			"After thorough consideration, we have decided not to move forward with this particular " +
				"concept at this time. Please know that this decision reflects our specific business " +
				"needs and market focus rather than the quality or creativity of your work.",
		},
	})

	feedback := constructiveFeedback
	if feedback == "" {
		feedback = genericImprovementFeedback
	}
	detailed := &Section{
		Heading: "Detailed Feedback",
		Body: []string{
			"### Areas of Consideration",
			rejectionReasons,
			"### Constructive Feedback for Future Submissions",
			feedback,
		},
	}
	if alternativeSuggestions != "" {
		detailed.Body = append(detailed.Body,
			"### Alternative Directions to Consider",
			alternativeSuggestions)
	}
	doc.Sections = append(doc.Sections, detailed)

	doc.Sections = append(doc.Sections,
		&Section{
			Heading: "Future Opportunities",
			Body: []string{
				"We value creative partnerships and encourage you to consider resubmitting in the future. " +
					"Here are some ways to strengthen future proposals:",
				"### Design Development",
				fmt.Sprintf("- Ensure clear alignment with %s's brand aesthetic\n", companyName) +
					"- Include detailed technical specifications and material choices\n" +
					"- Consider sustainability and ethical production factors",
				"### Market Research",
				"- Demonstrate understanding of target customer preferences\n" +
					"- Show awareness of current fashion trends and seasonal considerations\n" +
					"- Include competitive analysis and positioning strategy",
				"### Presentation Quality",
				"- Provide comprehensive visual representations\n" +
					"- Include clear production timeline and cost considerations\n" +
					"- Show scalability and collection potential",
			},
		},
		&Section{
			Heading: "Stay Connected",
			Body: []string{
				"We maintain an active network of designers and regularly review new concepts. " +
					"Please feel free to:",
				"- **Follow our brand updates** to understand our evolving design direction\n" +
					"- **Attend our designer networking events** when available\n" +
					"- **Resubmit concepts** that align with our future collection themes",
			},
		},
		&Section{
			Heading: "Next Steps",
			Body: []string{
				"If you have questions about this feedback or would like to discuss alternative " +
					"approaches, please don't hesitate to reach out to our design team.",
				"We wish you continued success in your creative endeavors and look forward to " +
					"seeing your future work.",
				"Best regards,",
				fmt.Sprintf("**%s Design Review Team**\n*Clothing Concept Evaluation Division*", companyName),
			},
		},
		&Section{
			Body: []string{
				fmt.Sprintf("*This is an automated review notification generated by the %s Concept Analysis System (template %s)*", companyName, reportTemplateVersion),
				"*For questions or clarifications, please contact our design team directly*",
			},
		},
	)
	return doc
}
