package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/model"
)

// AssessmentSystem - 전체 위험성 평가 초안 system instruction.
// 출력은 compliance 문서로 그대로 흘러가므로 strict JSON contract를 선언한다.
const AssessmentSystem = `You are helping a nursery prepare a risk assessment document for one of the following categories: Equipment and Toys, Medicine & Health, Food & Kitchen, Staffing & Supervision, Trips, Building, Weather, Infection Control, Fire and Emergency, Security.

You will receive a JSON object with all the relevant information needed to create the risk assessment.

Please output JSON that fills in the following fields for a document:

- assessment_type: The type of risk assessment being created
- assessment_date: The calendar date (use the date provided)
- assessor_name: Full name of the person preparing the assessment
- unique_id: A short identifier in the format YYMMDD-INITIALS-HHMMSS (use the value provided)
- activity_description: A brief phrase describing the activity or resource being assessed
- location: Specific site or setting where the activity takes place
- people_at_risk: Comma-separated list of groups who could be harmed
- review_date: One year from assessment_date, in YYYY-MM-DD format (use the value provided)

Then for each hazard (up to 10), provide:
- hazard_N: Short name of the specific hazard
- pre_rating_N: Risk rating before controls (H = High, M = Medium, L = Low)
- control_measures_N: Detailed practical measures to mitigate the hazard (2-3 sentences)
- post_rating_N: Risk rating after existing controls (H, M, or L)
- additional_controls_N: Extra actions recommended to reduce risk further (or empty string)
- reassess_rating_N: Expected risk rating after additional controls (H, M, or L)

Finally provide:
- safe_system_of_work: A concise paragraph outlining routine safety procedures (3-4 sentences)

Important guidelines:
- Control measures should be detailed and specific to nursery settings
- Reference EYFS requirements and Ofsted expectations where relevant
- Consider the age group and developmental stage of children
- Include supervision requirements appropriate to the activity
- Ensure measures are practical and implementable
- Pre-ratings should generally be H or M, post-ratings M or L, reassess ratings should be L

You MUST return ONLY valid JSON with no additional text, explanations, or markdown code fences.`

// assessmentPayload - user 메시지에 JSON으로 직렬화되는 입력.
// unique_id/review_date는 서버 계산값이며 모델은 이를 그대로 사용하도록 지시받는다
// (파싱 후 normalizer가 어차피 서버 값으로 덮어쓴다).
type assessmentPayload struct {
	AssessmentType      string   `json:"assessment_type"`
	ActivityDescription string   `json:"activity_description"`
	AssessmentDate      string   `json:"assessment_date"`
	AssessorName        string   `json:"assessor_name"`
	UniqueID            string   `json:"unique_id"`
	Location            string   `json:"location"`
	Nursery             string   `json:"nursery"`
	PeopleAtRisk        string   `json:"people_at_risk"`
	ReviewDate          string   `json:"review_date"`
	HazardsToAssess     []string `json:"hazards_to_assess"`
	PoliciesReferenced  []string `json:"policies_referenced"`
	ActivityOverview    string   `json:"activity_overview"`
}

// AssessmentUser - assessment user 메시지
func AssessmentUser(req model.AssessmentGenerateRequest, assessmentDate, uniqueID, reviewDate string, contextSnippets []string) string {
	policies := req.PoliciesSelected
	if policies == nil {
		policies = []string{}
	}

	payload := assessmentPayload{
		AssessmentType:      req.AssessmentType,
		ActivityDescription: req.ActivityName,
		AssessmentDate:      assessmentDate,
		AssessorName:        orDefault(req.AssessorName, "Not specified"),
		UniqueID:            uniqueID,
		Location:            orDefault(req.Location, "Hopscotch Nursery"),
		Nursery:             orDefault(req.Nursery, "Hopscotch Children's Nursery"),
		PeopleAtRisk:        joinOr(req.PeopleAtRisk, "Children, Staff"),
		ReviewDate:          reviewDate,
		HazardsToAssess:     req.Hazards,
		PoliciesReferenced:  policies,
		ActivityOverview:    req.Overview,
	}

	// 고정 구조체 직렬화라 실패할 수 없음
	encoded, _ := json.MarshalIndent(payload, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, `Create a complete risk assessment with these details:

%s
`, encoded)

	if len(contextSnippets) > 0 {
		fmt.Fprintf(&b, `
Reference these similar assessments for guidance on control measures and formatting:
%s
`, strings.Join(contextSnippets, "\n---\n"))
	}

	b.WriteString(ControlGuidance(req.PoliciesSelected))
	b.WriteString("\n\nGenerate the complete risk assessment JSON with all hazard details filled in.")

	return b.String()
}
