// NormalizedDocument를 .docx placeholder 템플릿에 병합
//
// .docx는 XML 파일들의 zip 아카이브. word/document.xml(및 header/footer)의
// {placeholder}를 문서 값으로 치환한 뒤 아카이브를 다시 구성한다.
//
// 템플릿에 있는 placeholder가 문서 키에 없으면 TemplateError
// (배포/템플릿 결함 신호 - 생성 경로 오류와 구분되어야 함).
//
// 제약: placeholder는 템플릿에서 하나의 XML run 안에 있어야 한다.
// 배포 템플릿은 그렇게 작성되어 있다 - Word에서 placeholder를 다시 입력하면
// run이 쪼개질 수 있으니 템플릿 수정 시 주의.

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/hopscotch/backend/internal/apperr"
)

// ContentType - 산출물의 office 문서 media type
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Assembler - 읽기 전용 템플릿 저장소를 가리키는 문서 조립기.
// 요청 간 상태 없음: 호출마다 템플릿을 새로 읽는다.
type Assembler struct {
	templatePath string
}

func NewAssembler(templatePath string) *Assembler {
	return &Assembler{templatePath: templatePath}
}

func (a *Assembler) Render(doc map[string]string) ([]byte, error) {
	raw, err := os.ReadFile(a.templatePath)
	if err != nil {
		return nil, &apperr.TemplateError{Reason: fmt.Sprintf("template not readable at %s: %v", a.templatePath, err)}
	}
	return Merge(raw, doc)
}

// Merge - 템플릿 바이트에 doc를 치환해 새 아카이브를 만든다.
// 해석 불가능한 템플릿과 미해결 placeholder는 모두 TemplateError.
func Merge(template []byte, doc map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, &apperr.TemplateError{Reason: "template is not a valid docx archive"}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var missing []string

	for _, f := range zr.File {
		content, err := readEntry(f)
		if err != nil {
			zw.Close()
			return nil, &apperr.TemplateError{Reason: fmt.Sprintf("cannot read template entry %s: %v", f.Name, err)}
		}

		if substitutable(f.Name) {
			content = substitute(content, doc, &missing)
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			zw.Close()
			return nil, &apperr.TemplateError{Reason: fmt.Sprintf("cannot rebuild template entry %s: %v", f.Name, err)}
		}
		if _, err := w.Write(content); err != nil {
			zw.Close()
			return nil, &apperr.TemplateError{Reason: fmt.Sprintf("cannot rebuild template entry %s: %v", f.Name, err)}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &apperr.TemplateError{Reason: fmt.Sprintf("cannot finalize document archive: %v", err)}
	}

	if len(missing) > 0 {
		return nil, &apperr.TemplateError{Placeholders: dedupe(missing)}
	}
	return buf.Bytes(), nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// substitutable - placeholder 치환 대상 아카이브 엔트리인지
func substitutable(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

func substitute(content []byte, doc map[string]string, missing *[]string) []byte {
	return placeholderPattern.ReplaceAllFunc(content, func(m []byte) []byte {
		key := string(placeholderPattern.FindSubmatch(m)[1])
		val, ok := doc[key]
		if !ok {
			*missing = append(*missing, key)
			return m
		}
		return []byte(escapeXML(val))
	})
}

func escapeXML(s string) string {
	var b bytes.Buffer
	// 고정 입력 버퍼에 대한 EscapeText는 실패하지 않는다
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
