// Package prompt - 생성형 서비스에 보낼 instruction 문서 구성
//
// 모든 빌더는 순수 함수: 같은 payload + context snippet에서 항상 같은 문서가 나온다.
// 출력 문법 선언(section-tagged 또는 strict JSON)과
// "선언된 형식만 반환하라"는 지시를 반드시 포함한다.
package prompt

import "strings"

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
