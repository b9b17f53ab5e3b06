package prompt

import (
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/model"
)

var incidentTypeNames = map[string]string{
	"childAccident": "Child Accident/Injury",
	"staffAccident": "Staff Accident/Injury",
	"allergyBreach": "Allergy Breach",
	"nearMiss":      "Near Miss",
}

// IncidentAnalysis - 사고 분석 instruction 문서 (section-tagged 출력 문법)
func IncidentAnalysis(data *model.IncidentData, incidentType string) string {
	typeName := incidentTypeNames[incidentType]
	if typeName == "" {
		typeName = incidentType
	}

	personType := data.PersonType
	if personType == "" {
		if incidentType == "staffAccident" {
			personType = "Staff member"
		} else {
			personType = "Child"
		}
	}

	locationDetail := ""
	if data.LocationDetail != "" {
		locationDetail = fmt.Sprintf(" (%s)", data.LocationDetail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert in UK early years safeguarding and health & safety regulations. Analyze the following nursery incident and provide recommendations.

INCIDENT TYPE: %s

INCIDENT DETAILS:
- Nursery: %s
- Date: %s
- Time: %s
- Person involved: %s
- Person type: %s
- Age: %s
- Location: %s%s

DESCRIPTION:
%s

INJURY INFORMATION:
- Types: %s
- Causes: %s
- Body areas: %s
- Severity: %s

RESPONSE:
- First aid given: %s
- First aid details: %s
- Medical attention required: %s
- Hospital attendance: %s
`,
		typeName,
		orDefault(data.Nursery, "Not specified"),
		orDefault(data.IncidentDate, "Not specified"),
		orDefault(data.IncidentTime, "Not specified"),
		orDefault(data.PersonName, "Not specified"),
		personType,
		orDefault(data.PersonAge, "Not specified"),
		orDefault(data.Location, "Not specified"), locationDetail,
		orDefault(data.Description, "No description provided"),
		joinOr(data.InjuryTypes, "None recorded"),
		joinOr(data.InjuryCauses, "None recorded"),
		joinOr(data.BodyAreas, "None recorded"),
		orDefault(data.Severity, "Not assessed"),
		orDefault(data.FirstAidGiven, "Unknown"),
		orDefault(data.FirstAidDetails, "None"),
		orDefault(data.MedicalAttentionRequired, "Unknown"),
		orDefault(data.HospitalAttendance, "Unknown"),
	)

	if incidentType == "allergyBreach" {
		fmt.Fprintf(&b, `
ALLERGY BREACH SPECIFIC:
- Allergen involved: %s
- Reaction occurred: %s
- Reaction details: %s
`,
			orDefault(data.AllergenInvolved, "Not specified"),
			orDefault(data.ReactionOccurred, "Unknown"),
			orDefault(data.ReactionDetails, "None"),
		)
	}

	b.WriteString(`
Please provide your analysis in the following exact format:

SUMMARY:
[2-3 sentence summary of the incident and its key concerns]

OFSTED_RECOMMENDATION:
[yes/no/uncertain]

OFSTED_REASONING:
[Brief explanation of why this may or may not require Ofsted notification under EYFS 2024 requirements. Reference specific criteria like serious injury, child protection concerns, or significant events.]

RIDDOR_RECOMMENDATION:
[yes/no/uncertain]

RIDDOR_REASONING:
[Brief explanation of whether this meets RIDDOR 2013 reporting requirements. Consider over-7-day injuries for staff, specified injuries, or dangerous occurrences.]

IMMEDIATE_ACTIONS:
[Bullet list of any immediate actions that should be considered if not already taken]

PREVENTIVE_MEASURES:
[Bullet list of recommended preventive measures to reduce likelihood of recurrence]

ADDITIONAL_CONCERNS:
[Any other safeguarding or compliance concerns to consider, or "None identified" if none]

Important: Be professional but supportive in tone. Use "consider" and "may need" rather than absolute statements. These are recommendations to assist professional judgement, not definitive rulings. Return only the sections above in the declared format.`)

	return b.String()
}
