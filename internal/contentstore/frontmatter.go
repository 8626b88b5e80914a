package contentstore

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter là khối YAML metadata đặt giữa hai fence "---"
// ở đầu file README.md của mỗi bài tập.
type FrontMatter struct {
	ID         string   `yaml:"id"`
	Subject    string   `yaml:"subject"`
	Chapter    int      `yaml:"chapter"`
	Exercise   int      `yaml:"exercise"`
	Title      string   `yaml:"title"`
	Difficulty string   `yaml:"difficulty"`
	Tags       []string `yaml:"tags"`
	Points     int      `yaml:"points"`
	TimeLimit  int      `yaml:"time_limit"`
}

var hintMarker = regexp.MustCompile(`^>\s*`)

// ParseDocument tách front matter và phần thân Markdown.
// File không có front matter thì toàn bộ nội dung là thân,
// metadata rỗng — giống hành vi của gray-matter.
func ParseDocument(raw []byte) (FrontMatter, string, error) {
	var fm FrontMatter
	content := string(raw)

	if !strings.HasPrefix(content, "---\n") && content != "---" && !strings.HasPrefix(content, "---\r\n") {
		return fm, content, nil
	}

	rest := content[strings.Index(content, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		// Fence mở mà không đóng: coi như không có front matter
		return fm, content, nil
	}

	block := rest[:end]
	body := rest[end+len("\n---"):]
	// Bỏ phần còn lại của dòng fence đóng và một dòng trống sau đó
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return FrontMatter{}, "", err
	}

	return fm, body, nil
}

// ParseHints lấy các dòng bắt đầu bằng ">" trong hints.md theo thứ tự
// xuất hiện, bỏ dấu ">" và khoảng trắng bao quanh.
func ParseHints(raw []byte) []string {
	var hints []string
	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.HasPrefix(line, ">") {
			continue
		}
		hint := strings.TrimSpace(hintMarker.ReplaceAllString(line, ""))
		hints = append(hints, hint)
	}
	return hints
}
