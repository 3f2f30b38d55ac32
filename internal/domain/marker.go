package domain

import (
	"strings"

	"github.com/John-Robertt/fcpmarker/internal/timecode"
)

// Marker 是一次提取过程中的单个章节标记（只在内存中存在，不落盘）。
type Marker struct {
	Seconds float64
	Label   string
}

// Line 返回 "MM:SS label"；label 为空时只输出 "MM:SS"（不留尾随空格）。
func (m Marker) Line() string {
	return strings.TrimSpace(timecode.Format(m.Seconds) + " " + m.Label)
}

// MarkerList 按首次出现顺序保存标记，并保证 label 唯一。
//
// 约束：同一 label 只保留第一次出现的条目；后续重复项即使时间不同也直接丢弃。
type MarkerList struct {
	items []Marker
	seen  map[string]struct{}
}

// Add 追加一个标记；若 label 已出现过则忽略并返回 false。
func (l *MarkerList) Add(m Marker) bool {
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, ok := l.seen[m.Label]; ok {
		return false
	}
	l.seen[m.Label] = struct{}{}
	l.items = append(l.items, m)
	return true
}

func (l *MarkerList) Len() int { return len(l.items) }

// Lines 按顺序返回每个标记的输出行。
func (l *MarkerList) Lines() []string {
	out := make([]string, 0, len(l.items))
	for _, m := range l.items {
		out = append(out, m.Line())
	}
	return out
}
