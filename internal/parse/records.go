// 생성 플로우별 section-tagged 레코드 추출기

package parse

import "github.com/hopscotch/backend/internal/model"

var incidentLabels = []string{
	"SUMMARY",
	"OFSTED_RECOMMENDATION",
	"OFSTED_REASONING",
	"RIDDOR_RECOMMENDATION",
	"RIDDOR_REASONING",
	"IMMEDIATE_ACTIONS",
	"PREVENTIVE_MEASURES",
	"ADDITIONAL_CONCERNS",
}

// IncidentAnalysis - 어떤 입력에도 모든 필드가 정의된 레코드를 반환
func IncidentAnalysis(text string) model.IncidentAnalysis {
	s := Sections(text, incidentLabels)
	return model.IncidentAnalysis{
		Summary:              s["SUMMARY"],
		OfstedRecommendation: TriState(s["OFSTED_RECOMMENDATION"]),
		OfstedReasoning:      s["OFSTED_REASONING"],
		RiddorRecommendation: TriState(s["RIDDOR_RECOMMENDATION"]),
		RiddorReasoning:      s["RIDDOR_REASONING"],
		ImmediateActions:     BulletList(s["IMMEDIATE_ACTIONS"]),
		PreventiveMeasures:   BulletList(s["PREVENTIVE_MEASURES"]),
		AdditionalConcerns:   s["ADDITIONAL_CONCERNS"],
	}
}

var witnessLabels = []string{
	"SUMMARY",
	"KEY_FACTS",
	"TIMELINE",
	"INCONSISTENCIES",
	"FOLLOW_UP_QUESTIONS",
	"CREDIBILITY_NOTES",
}

// WitnessAnalysis - 목격자 진술 분석 추출.
// INCONSISTENCIES의 "None identified" 항목은 실제 발견이 아니므로 걸러낸다.
func WitnessAnalysis(text string) model.WitnessAnalysis {
	s := Sections(text, witnessLabels)
	return model.WitnessAnalysis{
		Summary:           s["SUMMARY"],
		KeyFacts:          BulletList(s["KEY_FACTS"]),
		Timeline:          BulletList(s["TIMELINE"]),
		Inconsistencies:   DropSentinel(BulletList(s["INCONSISTENCIES"])),
		FollowUpQuestions: BulletList(s["FOLLOW_UP_QUESTIONS"]),
		CredibilityNotes:  s["CREDIBILITY_NOTES"],
	}
}
