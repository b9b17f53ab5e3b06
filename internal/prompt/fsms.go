// Hopscotch FSMS (Food Safety Management System, HACCP 기반 V2 Jan 2024)
// 정책 가이드 텍스트. 선택된 정책 id에 따라 prompt에 주입된다.
//
// 두 가지 flavor:
//   - hazard: brainstorm prompt용 (위험 요인 관점)
//   - control: assessment prompt용 (통제 수단 관점)

package prompt

import "strings"

// fsmsOrder - map 순회 대신 고정 순서 (prompt 결정성 보장)
var fsmsOrder = []string{
	"fsms-haccp",
	"fsms-allergens",
	"fsms-temperature",
	"fsms-choking",
	"fsms-sops",
	"fsms-monitoring",
}

var fsmsHazardGuidance = map[string]string{
	"fsms-haccp": `FSMS HACCP Guidance (Hopscotch):
- Four hazard types: Microbial (bacteria/viruses), Chemical (cleaning materials), Physical (foreign bodies from 4 P's: premises, people, pests, products), Allergenic (14 main allergens)
- Seven Critical Control Points (CCPs):
  CCP1: Receiving cold food - must be ≤8°C (Little Tums, packed lunches, shopping)
  CCP2: Receiving hot food - must be ≥63°C (Little Tums hot meals)
  CCP3/4: Opening/distributing food - serve within 2 hours of delivery
  CCP5: Reheating food - must reach ≥75°C core temperature
  CCP6: Bottle washing & sterilising - steam at 121-132°C
  CCP7: Food service for allergies - check Children's Information Board before serving
- Danger Zone: 5°C to 63°C - bacteria multiply rapidly, max 4 hours cumulative
- No raw meat, fish or seafood on premises
- Cross-contamination prevention: separate equipment, handwashing, clean surfaces
- Record all checks on HOP06 Daily Food Safety Diary`,

	"fsms-allergens": `FSMS Allergen Management (Hopscotch) - CCP7:
- 14 declarable allergens: Celery, Cereals (gluten), Crustaceans, Eggs, Fish, Lupin, Milk, Molluscs, Mustard, Nuts, Peanuts, Sesame, Soya, Sulphur dioxide
- CRITICAL: Check Children's Information Board in each room BEFORE any meal/snack/food activity
- If information unclear, access child's HOP05 Health Care Plan before serving
- Check Allergen Identity Tables (HOP12) against food from Little Tums and Hopscotch kitchen
- Cross-contamination controls: separate preparation areas, dedicated equipment, clear labelling
- If food served in error: withdraw immediately, do not move child, monitor closely with dedicated staff member
- Staff must be trained in allergen awareness and emergency medication protocols`,

	"fsms-temperature": `FSMS Temperature Control (Hopscotch) - CCPs 1-5:
- CCP1 Cold food receiving: ≤8°C critical limit (probe check every delivery)
- CCP2 Hot food receiving: ≥63°C critical limit
- CCP3/4 Distribution: serve within 2 hours of delivery; recheck temp if exceeded
- CCP5 Reheating: ≥75°C core temperature, verified with calibrated probe
- Fridge storage: 0-5°C, check and record daily
- Food outside limits for more than 2 hours since packing: reject/dispose
- Record on HOP06 Daily Food Safety Diary`,

	"fsms-choking": `FSMS Choking Hazards (Hopscotch):
- Children's windpipe is approximately diameter of a drinking straw
- High-risk foods: hard sweets (leading cause), whole grapes, cherry tomatoes, raw carrots, nuts, popcorn, chunks of meat/cheese, whole sausages/hot dogs, bones, seeds, hard crisps
- Formula milk and breast milk are also choking hazards for babies/infants
- Controls: cut food age-appropriately (grapes lengthwise), supervise all eating, appropriate portion sizes
- Staff must be trained in paediatric choking first aid response
- Certain foods restricted or banned in packed lunches - guidance provided to parents
- Food activities and messy play must assess choking risks before proceeding`,

	"fsms-sops": `FSMS Pre-Requisite SOPs (Hopscotch) - Key Hazards to Consider:
- Food types (SOP1): in-house snacks, Little Tums external meals, packed lunches, formula/breast milk, food activities and messy play
- Children's information (SOP2): allergies/medical/dietary on the Children's Information Board (RED/BLUE/GREEN pens), reviewed annually, covered at daily briefings
- Suppliers (SOP3): Food Hygiene Rating 4 or 5 only; Little Tums approval UK/AR009; HOP7 Suppliers List
- Training (SOP4): Level 2 Food Hygiene for handlers, Level 3 for managers, FSA allergy training, 3-year refreshers
- Premises (SOP5) and pests (SOP6): weekly maintenance visits, daily pest checks, no pest chemicals stored on site
- Complaints (SOP7): HOP9 form, foreign bodies photographed and retained, 48-hour investigation
- Separation (SOP11): no raw meat/fish/seafood; eggs stored separately; white boards for vegetables, green for fruit
- Labelling (SOP12): day dot labels, 3-day max Use By for prepared foods, 1 day for messy play items
- Personal hygiene (SOP13): aprons for food handling, no false nails, 48 hours symptom-free after D&V, blue plasters
- Allergen controls (SOP14): red bowls/cups for allergies, allergen-free meals prepared first, individual supervision
- Choking prevention (SOP16): grapes/cherry tomatoes cut lengthwise, no whole nuts under 5, supervised eating
- Foreign bodies (SOP17): minimal glass, no wooden boards or wire scourers, check eggs and fruit
- Chemicals (SOP19): EN 1276 sanitiser with 30s contact time, COSHH records, no bleach on food surfaces
- Cleaning (SOP20) and waste (SOP21): two-step clean then disinfect, 60°C dishwasher, lidded bins, yellow-lidded clinical waste`,

	"fsms-monitoring": `FSMS Monitoring & Recording (Hopscotch):
- HOP form series: HOP01 Registration, HOP02 Medical & Allergy Decision Tree, HOP04 Settling In, HOP05 Health Care Plan, HOP06 Daily Food Safety Diary, HOP08 Training Tracker, HOP12 Allergen Identity Tables, HOP13 Quarterly Management Review
- Daily: delivery and fridge temperatures logged, Polybox opening times recorded, Children's Information Board checked per room
- Periodic: quarterly management review (HOP13), annual FSMS review, external audit by SFBB Systems
- Retention: daily records 12 months minimum, incident records 3 years minimum`,
}

var fsmsControlGuidance = map[string]string{
	"fsms-haccp": `FSMS HACCP Control Measures (apply to Food & Kitchen assessments):
- CCP1 Receiving cold food: probe check on arrival (≤8°C); >8°C and >2hrs since packing: reject/dispose; record on HOP06
- CCP2 Receiving hot food: probe check on arrival (≥63°C); Little Tums packs at ≥75°C in insulated Polyboxes
- CCP3/4 Opening/distributing: within 2 hours of delivery; recheck temperature if exceeded; dispose food outside limits
- CCP5 Reheating: ≥75°C core temperature, covered and stirred in microwave, verified with calibrated probe
- CCP6 Bottle sterilising: Tommee Tippee steam sterilisers only (121-132°C), contents sterile 24 hours unopened
- General: HOP06 Daily Food Safety Diary for all records, supplier verification (UK/AR009), quarterly reviews (HOP13), staff food hygiene training (HOP08)`,

	"fsms-allergens": `FSMS Allergen Control Measures - CCP7 (apply to all food service):
- Before service: check Children's Information Board per room, verify day register against allergy records, consult HOP05 Health Care Plan if unclear, check Allergen Identity Tables (HOP12)
- During service: never serve known allergens to an allergic child, separate preparation areas/equipment, clear labelling, staff confirmation before each meal
- If food served in error: withdraw immediately, do NOT move the child, assign dedicated monitoring staff, follow emergency medication protocols, record on HOP06`,

	"fsms-temperature": `FSMS Temperature Control Measures (specific limits):
- Receiving: cold food ≤8°C (target 5°C), hot food ≥63°C, packed lunches refrigerated immediately
- Storage: fridge 0-5°C checked daily; Polybox food served within 2 hours
- Service: hot holding ≥63°C; cold food max 4 hours cumulative in danger zone
- Reheating: ≥75°C core, verified with calibrated probe (monthly calibration: iced water -1 to 1°C, boiling 99-101°C)
- Corrective actions documented on HOP06; food outside limits after 2 hours disposed`,

	"fsms-choking": `FSMS Choking Prevention Measures:
- High-risk foods restricted or modified: hard sweets, whole grapes and cherry tomatoes (cut lengthwise), raw carrots (grate or cook), nuts/seeds, popcorn, chunks of meat or cheese, whole sausages, bones
- Age-appropriate preparation: under 2s puree/very soft tiny pieces; 2-3 years soft small pieces; 3-5 years supervised age-appropriate portions
- Supervise all eating, children seated properly, no rushing meals
- Staff trained in paediatric choking first aid; emergency procedures displayed in eating areas
- Restricted food list provided to parents for packed lunches`,

	"fsms-sops": `FSMS Pre-Requisite SOP Control Measures (apply to Food & Kitchen assessments):
- Permitted foods (SOP1): pre-authorised shopping list, no raw meat/fish/seafood, messy play from approved list only
- Children's information (SOP2): HOP1/HOP2/HOP4/HOP5 forms, Information Board checked at every briefing, colour coding Medical=BLUE Allergens=RED Dietary=GREEN
- Suppliers (SOP3): minimum Food Hygiene Rating 4, HOP7 list with accreditation
- Training (SOP4): Level 2/3 Food Hygiene within 1 month, FSA allergen training, 3-year refreshers, HOP8 tracker
- Premises (SOP5): daily opening/closing checks on HOP6, defective equipment removed immediately
- Pest control (SOP6): daily visual checks, council call-out only, thorough clean after treatment
- Complaints (SOP7): HOP9 form, foreign bodies photographed with ruler and retained, Little Tums informed same day
- Temperature chain (SOP9/SOP10): danger zone 5-63°C, max 20 minutes at room temperature, calibrated probes per room
- Preparation (SOP11): British Lion eggs fully cooked, sanitised-sink vegetable washing, colour-coded boards
- Labelling (SOP12): MADE ON / OPENED ON day dots, 3-day max for prepared foods
- Hygiene (SOP13): daily clean uniform washed at 60°C, disposable aprons, blue plasters, HOP10/HOP11 health forms
- Allergens (SOP14): red bowls for allergies, allergen-free meals first, clean apron between preps, swab testing validates cleaning
- Choking (SOP16), foreign bodies (SOP17), chemicals (SOP19), cleaning (SOP20), waste (SOP21): as per the matching FSMS sections`,

	"fsms-monitoring": `FSMS Monitoring & Recording Control Measures:
- Daily HOP06 records: delivery temperatures with time, fridge temps start and end of day, Polybox opening times, corrective actions, incidents
- Pre-service checks: Children's Information Board verified per room, day register cross-referenced, menu checked against HOP12, staff briefed on new allergies
- Review schedule: weekly corrective-action review, quarterly HOP13 management review, annual FSMS review with external SFBB Systems audit
- Risk assessment measures: staff trained in record-keeping, calibrated thermometers in working order, HOP06 diaries accessible in food areas`,
}

// HazardGuidance - brainstorm prompt용 FSMS 가이드.
// "fsms" 선택 시 전체 포함, 개별 id는 legacy 지원.
func HazardGuidance(policiesSelected []string) string {
	return fsmsGuidance(policiesSelected, fsmsHazardGuidance,
		"\n\nHopscotch FSMS Policy Requirements:\n")
}

// ControlGuidance - assessment prompt용 FSMS 가이드
func ControlGuidance(policiesSelected []string) string {
	return fsmsGuidance(policiesSelected, fsmsControlGuidance,
		"\n\nApply these Hopscotch FSMS control measures where relevant:\n")
}

func fsmsGuidance(policiesSelected []string, guidance map[string]string, header string) string {
	if len(policiesSelected) == 0 {
		return ""
	}

	selected := make(map[string]bool, len(policiesSelected))
	all := false
	for _, id := range policiesSelected {
		if id == "fsms" {
			all = true
		}
		selected[id] = true
	}

	blocks := make([]string, 0, len(fsmsOrder))
	for _, id := range fsmsOrder {
		if all || selected[id] {
			blocks = append(blocks, guidance[id])
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return header + strings.Join(blocks, "\n\n")
}
