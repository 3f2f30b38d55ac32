package main

import (
	"fmt"
	"io"

	"github.com/John-Robertt/fcpmarker/internal/app/run"
	"github.com/John-Robertt/fcpmarker/internal/domain"
)

var _ run.Observer = (*statusPrinter)(nil)

// statusPrinter 把运行事件打印为面向用户的状态行。
type statusPrinter struct {
	w io.Writer
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{w: w}
}

func (p *statusPrinter) OnResolved(input, resolved string) {
	if resolved == input {
		return
	}
	fmt.Fprintf(p.w, "解析到 FCPXML 文件: %s\n", resolved)
}

func (p *statusPrinter) OnDone(s domain.Summary) {
	fmt.Fprintf(p.w, "已写入 %d 条时间标记到 %s\n", s.Count, s.Output)
}
