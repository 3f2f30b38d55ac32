package domain

const (
	ErrCodeInputNotFound = "input_not_found"
	ErrCodeConfigInvalid = "config_invalid"
	ErrCodeIOFailed      = "io_failed"
)

// Summary 是一次运行的结果摘要（CLI 用它打印状态行）。
type Summary struct {
	// Input 是用户给出的原始路径（未做任何规范化）。
	Input string
	// Resolved 是最终读取的 FCPXML 文件路径；与 Input 不同说明输入是 bundle 目录。
	Resolved string
	Output   string
	Engine   string
	Count    int
}

// Redirected 表示输入路径经过了 bundle 解析。
func (s Summary) Redirected() bool {
	return s.Resolved != "" && s.Resolved != s.Input
}
