// Section-Tagged Text Contract 파서
//
// `LABEL:` 블록으로 구성된 모델 출력에서 필드를 추출한다.
// 선언된 라벨의 등장 위치를 전부 찾은 뒤 연속한 위치 사이를 잘라내는 방식
// (정규식 lookahead 체인보다 라벨 순서 변경/누락에 강함).
//
// 이 파서는 total: 어떤 입력에도 오류를 내지 않고,
// 누락된 섹션은 호출자가 타입 기본값으로 채운다.

package parse

import (
	"sort"
	"strings"
	"unicode"
)

type labelMatch struct {
	label string
	start int // "LABEL:" 시작 위치
	body  int // ':' 다음, 본문 시작 위치
}

// Sections - 본문에서 발견된 라벨만 담은 map을 반환 (누락 라벨은 키 없음).
// 라벨 매칭은 대소문자 무시, 라벨별 첫 등장 기준.
func Sections(text string, labels []string) map[string]string {
	lower := strings.ToLower(text)

	matches := make([]labelMatch, 0, len(labels))
	for _, label := range labels {
		token := strings.ToLower(label) + ":"
		idx := strings.Index(lower, token)
		if idx < 0 {
			continue
		}
		matches = append(matches, labelMatch{label: label, start: idx, body: idx + len(token)})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	sections := make(map[string]string, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		sections[m.label] = strings.TrimSpace(text[m.body:end])
	}
	return sections
}

// BulletList - 섹션 본문을 줄 단위로 분리하고 선두 bullet 마커 1개를 제거.
// 빈 줄은 버린다. 입력이 비면 빈(비-nil) 슬라이스 반환.
func BulletList(text string) []string {
	lines := strings.Split(text, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		for _, marker := range []string{"-", "•", "*"} {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
				break
			}
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// TriStateDefault - 3-way enum의 안전 기본값
const TriStateDefault = "uncertain"

var triStateAllowed = map[string]bool{
	"yes":       true,
	"no":        true,
	"uncertain": true,
}

// TriState - 캡처된 값의 첫 단어를 allow-list에 대조.
// 목록 밖의 값("Definitely" 등)과 빈 값은 모두 "uncertain"으로 수렴한다.
func TriState(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if i := strings.IndexFunc(v, func(r rune) bool { return !unicode.IsLetter(r) }); i >= 0 {
		v = v[:i]
	}
	if triStateAllowed[v] {
		return v
	}
	return TriStateDefault
}

const sentinelNoneIdentified = "none identified"

// DropSentinel - "None identified" 류의 무발견 sentinel 항목을 제거.
// 그 외 항목은 그대로 보존한다.
func DropSentinel(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), sentinelNoneIdentified) {
			continue
		}
		out = append(out, item)
	}
	return out
}
