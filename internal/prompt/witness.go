package prompt

import (
	"fmt"
	"strings"
)

// WitnessAnalysis - 목격자 진술 검토 instruction (section-tagged 출력 문법).
// 진술 파일 자체는 별도 inline part로 같은 메시지에 실린다.
func WitnessAnalysis(fileName, incidentDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert in reviewing witness statements for nursery incident investigations. Analyze this witness statement and extract key information.

FILE NAME: %s
`, fileName)

	if strings.TrimSpace(incidentDescription) != "" {
		fmt.Fprintf(&b, `
INCIDENT DESCRIPTION (for context):
%s
`, incidentDescription)
	}

	b.WriteString(`
Please analyze the witness statement and provide your analysis in the following exact format:

SUMMARY:
[1-2 sentence summary of what the witness observed]

KEY_FACTS:
[Bullet list of key facts stated by the witness - who, what, when, where]

TIMELINE:
[Bullet list of events in chronological order as described by the witness]

INCONSISTENCIES:
[Bullet list of any potential inconsistencies with the incident description, or "None identified" if none]

FOLLOW_UP_QUESTIONS:
[Bullet list of questions that might need clarification or follow-up with the witness]

CREDIBILITY_NOTES:
[Any observations about the statement's detail level, clarity, or potential reliability - be neutral and factual]

Important:
- Focus on extracting factual information from the statement
- Note specific times, locations, and actions if mentioned
- Be objective and avoid judgmental language
- If the document is unclear or illegible, note this in your analysis
- Return only the sections above in the declared format`)

	return b.String()
}
