package marker

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	EnginePattern = "pattern"
	EngineDOM     = "dom"
)

// RawMarker 是从标签上直接取到的两段原始文本（未 trim、未解析）。
type RawMarker struct {
	// Start 是 start 属性去掉结尾 "s" 之后的内容。
	Start string
	// Value 是 value 属性的内容（可能跨行）。
	Value string
}

// Scanner 从 FCPXML 原文中按出现顺序找出所有 <chapter-marker>。
//
// 约束：只识别 chapter-marker；同格式里的 <marker> 不在提取范围内。
type Scanner interface {
	Scan(content []byte) []RawMarker
}

// ScannerFor 按引擎名返回 Scanner；空串视为默认的 pattern。
func ScannerFor(engine string) (Scanner, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EnginePattern:
		return PatternScanner{}, nil
	case EngineDOM:
		return DOMScanner{}, nil
	default:
		return nil, fmt.Errorf("未知 engine：%q（只能是 %s 或 %s）", engine, EnginePattern, EngineDOM)
	}
}

// 标签体允许跨行；引号内可以出现 '>'。
var chapterTagRE = regexp.MustCompile(`<chapter-marker((?:\s(?:[^>"]|"[^"]*")*)?)>`)

// 属性必须用双引号；值按原样截取（包括换行），不做实体解码。
var attrRE = regexp.MustCompile(`(?:^|\s)([A-Za-z_:][-A-Za-z0-9_.:]*)\s*=\s*"([^"]*)"`)

// PatternScanner 用正则直接扫描原文，不构建文档树，因此能容忍残缺/不合法的 XML。
type PatternScanner struct{}

func (PatternScanner) Scan(content []byte) []RawMarker {
	tags := chapterTagRE.FindAllSubmatch(content, -1)
	out := make([]RawMarker, 0, len(tags))
	for _, tag := range tags {
		if len(tag) < 2 {
			continue
		}
		attrs := parseAttrs(string(tag[1]))
		rm, ok := toRaw(attrs)
		if !ok {
			continue
		}
		out = append(out, rm)
	}
	return out
}

// parseAttrs 只保留同名属性的第一次出现。
func parseAttrs(body string) map[string]string {
	m := map[string]string{}
	for _, a := range attrRE.FindAllStringSubmatch(body, -1) {
		if len(a) < 3 {
			continue
		}
		if _, ok := m[a[1]]; ok {
			continue
		}
		m[a[1]] = a[2]
	}
	return m
}

// toRaw 要求 start 与 value 都存在，且 start 以 "s" 结尾（"s" 前至少一个字符）。
func toRaw(attrs map[string]string) (RawMarker, bool) {
	start, ok := attrs["start"]
	if !ok || len(start) < 2 || !strings.HasSuffix(start, "s") {
		return RawMarker{}, false
	}
	value, ok := attrs["value"]
	if !ok {
		return RawMarker{}, false
	}
	return RawMarker{Start: strings.TrimSuffix(start, "s"), Value: value}, true
}
