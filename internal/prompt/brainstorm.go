package prompt

import (
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/model"
)

// BrainstormSystem - hazard 후보 생성 system instruction (strict JSON 출력 문법)
const BrainstormSystem = `You are a specialist in UK early years risk assessment.

Task: Generate a comprehensive list of potential hazards and risks that will form part of a risk assessment.

Context: The setting is a children's nursery in the UK. Hazards should reflect real risks in this environment, including:

- Health & medical risks (medication, allergies, food preparation, infections, special conditions)
- Procedural risks (record-keeping, staff training, handovers, parental communication)
- Environmental risks (nursery facilities, equipment, food handling, play areas, outings)
- Human factors (staff error, distraction, turnover, child behaviour, peer interactions)
- Safeguarding & legal risks (data protection, consent, Ofsted compliance, liability)
- Emergency/contingency risks (access to emergency medication, ambulance delays, contact failures)

Guidelines:
- Identify 5-7 specific, actionable hazards relevant to the activity
- Consider the assessment type, location, and age group (0-5 years)
- Focus on realistic risks in early years childcare settings
- Each hazard should be a clear, concise statement (one sentence)
- Prioritize hazards from most to least critical

You MUST return ONLY valid JSON in this EXACT structure with no additional text, explanations, or markdown:

{
  "suggested_hazards": [
    "Hazard description 1",
    "Hazard description 2",
    "Hazard description 3",
    "Hazard description 4",
    "Hazard description 5"
  ]
}`

// BrainstormUser - brainstorm user 메시지.
// contextSnippets는 best-effort 조회 결과 (비어 있어도 동작).
func BrainstormUser(req model.HazardBrainstormRequest, contextSnippets []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Generate hazards for this risk assessment:

Assessment Type: %s
Activity Name: %s
Location: %s
Nursery: %s
People at Risk: %s
Activity Overview: %s
Policies to Reference: %s
%s`,
		req.AssessmentType,
		req.ActivityName,
		orDefault(req.Location, "Hopscotch Nursery"),
		orDefault(req.Nursery, "Hopscotch Children's Nursery"),
		joinOr(req.PeopleAtRisk, "Children, Staff"),
		orDefault(req.Overview, "General nursery activity"),
		joinOr(req.PoliciesSelected, "Health and Safety"),
		HazardGuidance(req.PoliciesSelected),
	)

	if len(contextSnippets) > 0 {
		fmt.Fprintf(&b, `
Reference these similar assessments for context:
%s
`, strings.Join(contextSnippets, "\n---\n"))
	}

	return b.String()
}
