package run

import "github.com/John-Robertt/fcpmarker/internal/domain"

// Observer 接收运行过程中的事件；run 包本身不做任何输出。
type Observer interface {
	// OnResolved 在定位到实际读取的 FCPXML 文件后调用。
	OnResolved(input, resolved string)
	// OnDone 在输出文件写入成功后调用。
	OnDone(s domain.Summary)
}
