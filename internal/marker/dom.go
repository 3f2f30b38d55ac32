package marker

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOMScanner 用 goquery 构建文档树后按元素名取 chapter-marker。
//
// 与 PatternScanner 的差异：属性值会做字符实体解码（"&amp;" -> "&"）。
// 解析失败时返回空结果（与"没有匹配"一致，不报错）。
type DOMScanner struct{}

// 包一层 <svg> 让解析器进入外部内容模式：
// - <title>/<text> 等不会被当成 HTML 原始文本，内部的标记仍可见
// - 自闭合标签（<chapter-marker ... />）按 XML 语义闭合
const foreignPrefix = "<svg>"

func (DOMScanner) Scan(content []byte) []RawMarker {
	r := io.MultiReader(strings.NewReader(foreignPrefix), bytes.NewReader(content))
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil
	}

	var out []RawMarker
	doc.Find("chapter-marker").Each(func(_ int, s *goquery.Selection) {
		attrs := map[string]string{}
		if v, ok := s.Attr("start"); ok {
			attrs["start"] = v
		}
		if v, ok := s.Attr("value"); ok {
			attrs["value"] = v
		}
		if rm, ok := toRaw(attrs); ok {
			out = append(out, rm)
		}
	})
	return out
}
