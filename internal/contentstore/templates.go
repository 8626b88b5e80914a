package contentstore

import (
	"fmt"
	"strings"
)

// ReadmeParams là dữ liệu đổ vào README.md khi tạo bài tập mới
type ReadmeParams struct {
	ID         string
	Subject    string
	Chapter    int
	Exercise   int
	Title      string
	Difficulty string
	Tags       []string
	Points     int
	TimeLimit  int
	Content    string
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// BuildReadme dựng README.md gồm front matter và đề bài.
// Đề bài trống thì thay bằng khung mẫu để người soạn điền sau.
func BuildReadme(p ReadmeParams) string {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		content = fmt.Sprintf("# Bài tập %d: %s\n\n## Đề bài\n\n[Viết mô tả bài tập ở đây]", p.Exercise, p.Title)
	}

	tags := make([]string, len(p.Tags))
	for i, tag := range p.Tags {
		tags[i] = quote(tag)
	}

	return fmt.Sprintf(`---
id: %s
subject: %s
chapter: %d
exercise: %d
title: %s
difficulty: %s
tags: [%s]
points: %d
time_limit: %d
---

%s
`,
		quote(p.ID),
		quote(p.Subject),
		p.Chapter,
		p.Exercise,
		quote(p.Title),
		quote(p.Difficulty),
		strings.Join(tags, ", "),
		p.Points,
		p.TimeLimit,
		content,
	)
}

// BuildSolution trả về solution.md; không có lời giải thì dùng
// khung mẫu kèm mục phân tích độ phức tạp.
func BuildSolution(content string) string {
	if strings.TrimSpace(content) != "" {
		return strings.TrimRight(content, " \t\r\n") + "\n"
	}

	return `# Lời giải

## Phân tích

[Phân tích bài toán]

## Code mẫu

` + "```c\n[Code ở đây]\n```" + `

## Độ phức tạp

- Time: O(?)
- Space: O(?)
`
}

// BuildHints dựng hints.md, mỗi gợi ý một mục "## Gợi ý <n>"
// với nội dung nằm trong blockquote để job sync đọc lại được.
func BuildHints(hints []string) string {
	var sanitized []string
	for _, h := range hints {
		h = strings.TrimSpace(h)
		if h != "" {
			sanitized = append(sanitized, h)
		}
	}

	if len(sanitized) == 0 {
		return "# Gợi ý\n\n## Gợi ý 1\n> [Gợi ý đầu tiên]\n"
	}

	sections := make([]string, len(sanitized))
	for i, hint := range sanitized {
		sections[i] = fmt.Sprintf("## Gợi ý %d\n> %s", i+1, hint)
	}

	return "# Gợi ý\n\n" + strings.Join(sections, "\n\n") + "\n"
}
