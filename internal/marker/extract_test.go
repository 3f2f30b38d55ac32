package marker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtract_EndToEndExample(t *testing.T) {
	content := []byte(`<chapter-marker start="0s" value="Intro">` + "\n" +
		`<chapter-marker start="65s" value="Verse 1">`)

	got := Render(Extract(content, nil))
	want := "00:00 Intro\n01:05 Verse 1\n"
	if string(got) != want {
		t.Fatalf("期望 %q，实际 %q", want, string(got))
	}
}

func TestExtract_Golden(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "project.fcpxml"))
	if err != nil {
		t.Fatalf("读取 fixture 失败：%v", err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "project.golden.txt"))
	if err != nil {
		t.Fatalf("读取 golden 失败：%v", err)
	}

	got := Render(Extract(content, PatternScanner{}))
	if string(got) != string(want) {
		t.Fatalf("输出与 golden 不一致：\n期望=%q\n实际=%q", string(want), string(got))
	}
}

func TestExtract_DedupFirstWins(t *testing.T) {
	content := []byte(`
<chapter-marker start="10s" value="X"/>
<chapter-marker start="20s" value="Y"/>
<chapter-marker start="300s" value="X"/>
`)
	got := Extract(content, nil)
	want := []string{"00:10 X", "00:20 Y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_DedupOnTrimmedLabel(t *testing.T) {
	content := []byte(`<chapter-marker start="1s" value="A"/><chapter-marker start="2s" value="  A "/>`)
	got := Extract(content, nil)
	if len(got) != 1 || got[0] != "00:01 A" {
		t.Fatalf("去重应基于 trim 后的 label，实际 %v", got)
	}
}

func TestExtract_RationalAndFallback(t *testing.T) {
	content := []byte(`
<chapter-marker start="2702600/30000s" value="Rational"/>
<chapter-marker start="abc s" value="Broken"/>
<chapter-marker start="1/0s" value="ZeroDen"/>
`)
	got := Extract(content, nil)
	want := []string{"01:30 Rational", "00:00 Broken", "00:00 ZeroDen"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_HugeStartTime(t *testing.T) {
	got := Extract([]byte(`<chapter-marker start="1e20s" value="Huge"/>`), nil)
	want := []string{"1666666666666666666:40 Huge"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_AttributeOrderAndInterleaving(t *testing.T) {
	content := []byte(`<chapter-marker value="Late start" duration="1001/30000s" start="5s" posterOffset="11/30s"/>`)
	got := Extract(content, nil)
	want := []string{"00:05 Late start"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_MultilineTagAndValue(t *testing.T) {
	content := []byte("<chapter-marker\n    start=\"61s\"\n    value=\"Line one\nLine two\"\n/>")
	got := Extract(content, nil)
	want := []string{"01:01 Line one\nLine two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_EmptyLabel(t *testing.T) {
	content := []byte(`<chapter-marker start="7s" value="   "/>`)
	got := Extract(content, nil)
	want := []string{"00:07"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_IgnoresPlainMarkerAndIncompleteTags(t *testing.T) {
	content := []byte(`
<marker start="1s" value="plain"/>
<chapter-markers start="2s" value="wrong name"/>
<chapter-marker value="no start"/>
<chapter-marker start="3s"/>
<chapter-marker start="4" value="no suffix"/>
<chapter-marker start="s" value="only suffix"/>
<chapter-marker data-start="5s" value="prefixed attr"/>
`)
	got := Extract(content, nil)
	if len(got) != 0 {
		t.Fatalf("期望没有任何匹配，实际 %v", got)
	}
}

func TestExtract_QuotedGreaterThan(t *testing.T) {
	content := []byte(`<chapter-marker start="9s" value="a > b"/>`)
	got := Extract(content, nil)
	want := []string{"00:09 a > b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestExtract_NoMatchesIsEmptyNotNil(t *testing.T) {
	got := Extract([]byte(`<fcpxml version="1.10"></fcpxml>`), nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("期望空切片，实际 %#v", got)
	}
	if len(Render(got)) != 0 {
		t.Fatalf("空结果渲染后应为空内容")
	}
}

func TestExtractFile_Idempotent(t *testing.T) {
	path := filepath.Join("testdata", "project.fcpxml")
	a, err := ExtractFile(path, nil)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	b, err := ExtractFile(path, nil)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if string(Render(a)) != string(Render(b)) {
		t.Fatalf("两次提取结果应完全一致")
	}
}

func TestExtractFile_Missing(t *testing.T) {
	if _, err := ExtractFile(filepath.Join(t.TempDir(), "nope.fcpxml"), nil); err == nil {
		t.Fatalf("期望读取失败")
	}
}
