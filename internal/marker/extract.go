package marker

import (
	"os"
	"strings"

	"github.com/John-Robertt/fcpmarker/internal/domain"
	"github.com/John-Robertt/fcpmarker/internal/timecode"
)

// Extract 从 FCPXML 原文中提取章节标记，返回按文件首次出现顺序排列的 "MM:SS label" 行。
//
// 规则：
// - start/value 先去首尾空白
// - 时间解析失败按 0 秒处理（见 timecode.Parse）
// - 按 label 去重：只保留第一次出现的条目，后续同名条目直接丢弃（不更新时间）
//
// sc 为 nil 时使用 PatternScanner。没有匹配时返回空切片（非 nil）。
func Extract(content []byte, sc Scanner) []string {
	list := Collect(content, sc)
	return list.Lines()
}

// Collect 与 Extract 相同，但返回结构化的 MarkerList。
func Collect(content []byte, sc Scanner) *domain.MarkerList {
	if sc == nil {
		sc = PatternScanner{}
	}
	list := &domain.MarkerList{}
	for _, rm := range sc.Scan(content) {
		list.Add(domain.Marker{
			Seconds: timecode.Parse(strings.TrimSpace(rm.Start)),
			Label:   strings.TrimSpace(rm.Value),
		})
	}
	return list
}

// ExtractFile 读取整个文件（UTF-8）后调用 Extract。
func ExtractFile(path string, sc Scanner) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(b, sc), nil
}

// Render 把行拼成输出文件内容：每行以 "\n" 结尾，无表头、无汇总行。
func Render(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
