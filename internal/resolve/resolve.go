package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BundleInfoName 是 .fcpxmld 包内主文件的固定名称。
const BundleInfoName = "Info.fcpxml"

const fcpxmlExt = ".fcpxml"

// NotFoundError 表示无法定位可读取的 FCPXML 文件。
//
// Kind：
// - "input"：输入路径不存在（或不是普通文件/目录）
// - "bundle"：输入是目录，但其中既没有 Info.fcpxml，也没有任何 *.fcpxml
type NotFoundError struct {
	Path string
	Kind string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case "bundle":
		return fmt.Sprintf("在文件夹 %s 中未找到 %s 或其他 %s 文件", e.Path, BundleInfoName, fcpxmlExt)
	default:
		return fmt.Sprintf("输入文件 %s 不存在", e.Path)
	}
}

// Unwrap 让调用方可以用 errors.Is(err, os.ErrNotExist) 统一判断。
func (e *NotFoundError) Unwrap() error { return os.ErrNotExist }

// IsNotFound 判断 err 是否为 NotFoundError。
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// Resolve 把用户给出的路径解析为实际要读取的 FCPXML 文件。
//
// 规则（固定）：
// 1) 普通文件：原样返回（不做 Clean/Abs，便于上层判断是否发生了解析）
// 2) 目录：优先 <dir>/Info.fcpxml；否则取目录下第一个以 .fcpxml 结尾（不区分大小写）的文件
// 3) 其余情况返回 *NotFoundError
//
// 注意：只看目录的直接子项，不递归；os.ReadDir 按文件名排序，结果稳定。
func Resolve(inputPath string) (string, error) {
	fi, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: inputPath, Kind: "input"}
		}
		return "", err
	}

	if fi.Mode().IsRegular() {
		return inputPath, nil
	}
	if !fi.IsDir() {
		return "", &NotFoundError{Path: inputPath, Kind: "input"}
	}

	info := filepath.Join(inputPath, BundleInfoName)
	if ifi, err := os.Stat(info); err == nil && ifi.Mode().IsRegular() {
		return info, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), fcpxmlExt) {
			return filepath.Join(inputPath, e.Name()), nil
		}
	}
	return "", &NotFoundError{Path: inputPath, Kind: "bundle"}
}
