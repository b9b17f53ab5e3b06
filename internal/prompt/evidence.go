package prompt

import (
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/model"
)

// EvidenceReview - 사고 설명과 증거(진술 분석, 사진, 문서)를 대조하는
// instruction (strict JSON 출력 문법)
func EvidenceReview(description string, witnessStatements []model.WitnessStatementRef, photos, documents []model.EvidenceFileRef) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert incident investigator helping a nursery manager ensure their incident report is complete and accurate. Your role is to compare the manager's description against the available evidence and flag any gaps, inconsistencies, or areas that might need clarification.

IMPORTANT: Be helpful but not overwhelming. Only flag genuinely useful observations. If there are no significant issues, return an empty list.

MANAGER'S INCIDENT DESCRIPTION:
%s

`, description)

	if len(witnessStatements) > 0 {
		b.WriteString("WITNESS STATEMENTS:\n")
		for i, ws := range witnessStatements {
			fmt.Fprintf(&b, "\n--- Witness Statement %d (%s) ---\n", i+1, ws.FileName)
			if ws.Analysis == nil {
				b.WriteString("(Statement uploaded but not yet analyzed)\n")
				continue
			}
			fmt.Fprintf(&b, "Summary: %s\n", orDefault(ws.Analysis.Summary, "Not analyzed"))
			if len(ws.Analysis.KeyFacts) > 0 {
				b.WriteString("Key facts:\n")
				for _, fact := range ws.Analysis.KeyFacts {
					fmt.Fprintf(&b, "- %s\n", fact)
				}
			}
			if len(ws.Analysis.Timeline) > 0 {
				b.WriteString("Timeline:\n")
				for _, event := range ws.Analysis.Timeline {
					fmt.Fprintf(&b, "- %s\n", event)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(photos) > 0 {
		b.WriteString("PHOTOS UPLOADED:\n")
		for i, photo := range photos {
			fmt.Fprintf(&b, "- Photo %d: %s\n", i+1, photo.FileName)
		}
		b.WriteString("\n")
	}

	if len(documents) > 0 {
		b.WriteString("SUPPORTING DOCUMENTS:\n")
		for i, doc := range documents {
			fmt.Fprintf(&b, "- Document %d: %s\n", i+1, doc.FileName)
		}
		b.WriteString("\n")
	}

	b.WriteString(`Please review the manager's description against the evidence and identify:

1. GAPS: Important facts from witness statements that are missing from the manager's description
2. INCONSISTENCIES: Differences between the description and witness accounts (times, locations, sequence of events)
3. CLARIFICATIONS: Areas where the description could be clearer or more complete

Respond in the following JSON format ONLY (no other text):

{
  "suggestions": [
    {
      "type": "gap|inconsistency|clarification",
      "source": "Witness statement 1" or "Photo 2" or "General",
      "message": "What you noticed",
      "suggestion": "What the manager might consider adding or changing",
      "severity": "info|warning"
    }
  ]
}

Guidelines:
- Use "warning" severity only for genuine inconsistencies or significant omissions
- Use "info" severity for helpful suggestions that aren't critical
- Keep messages concise and actionable
- Reference specific evidence sources
- If everything looks complete, return {"suggestions": []}
- Maximum 5 suggestions - focus on the most important ones`)

	return b.String()
}
