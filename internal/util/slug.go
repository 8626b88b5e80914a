package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify đưa tên tiếng Việt về dạng slug: bỏ dấu, đ->d,
// ký tự lạ bị loại, khoảng trắng thành gạch nối.
// Hàm có tính lũy đẳng: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.ToLower(text)

	// NFD tách dấu thành combining mark rồi loại bỏ
	s = norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == 'đ' {
			b.WriteRune('d')
			continue
		}
		b.WriteRune(r)
	}

	s = nonSlugChars.ReplaceAllString(b.String(), "")
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return s
}

// IsValidSlug kiểm tra chuỗi đã ở dạng [a-z0-9-]+ hay chưa
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
