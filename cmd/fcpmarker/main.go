package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/John-Robertt/fcpmarker/internal/app/run"
	"github.com/John-Robertt/fcpmarker/internal/config"
	"github.com/John-Robertt/fcpmarker/internal/resolve"
)

func main() {
	if code := runMain(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

var errHelp = errors.New("help requested")

func runMain(args []string, stdout, stderr io.Writer) int {
	ca, err := parseArgs(args)
	if errors.Is(err, errHelp) {
		printUsage(stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n\n", err)
		printUsage(stderr)
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd, ca)
	if err != nil {
		if config.Code(err) == config.ErrCodeInvalid {
			fmt.Fprintf(stderr, "配置错误：%v\n", err)
		} else {
			fmt.Fprintf(stderr, "读取配置失败：%v\n", err)
		}
		return 1
	}

	if _, err := run.ExecuteWithObserver(eff, newStatusPrinter(stdout)); err != nil {
		// 找不到输入属于预期内的用户错误：只打印原因，不带阶段信息。
		if resolve.IsNotFound(err) {
			fmt.Fprintf(stdout, "错误: %v\n", unwrapRun(err))
			return 1
		}
		fmt.Fprintf(stderr, "%s失败：%v\n", stageLabel(err), unwrapRun(err))
		return 1
	}
	return 0
}

// parseArgs 支持 -i X / -iX / --input X / --input=X（-o 同理）。
// 只有处于参数位置的 -h/--help 才返回 errHelp；作为 -i/-o 的值时按普通字符串处理。
func parseArgs(args []string) (config.CLIArgs, error) {
	ca := config.CLIArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		name, val, hasVal := splitFlag(a)
		switch name {
		case "input", "output":
			if !hasVal {
				if i+1 >= len(args) {
					return config.CLIArgs{}, fmt.Errorf("%s 需要一个值", a)
				}
				i++
				val = args[i]
			}
			if name == "input" {
				ca.Input, ca.InputSet = val, true
			} else {
				ca.Output, ca.OutputSet = val, true
			}
		default:
			if isHelp(a) {
				return config.CLIArgs{}, errHelp
			}
			if strings.HasPrefix(a, "-") && a != "-" {
				return config.CLIArgs{}, fmt.Errorf("未知参数 %q", a)
			}
			return config.CLIArgs{}, fmt.Errorf("多余的参数 %q", a)
		}
	}
	return ca, nil
}

// splitFlag 把参数拆成（规范名，内联值，是否带内联值）；不是已知参数时 name 为空。
func splitFlag(a string) (name, val string, hasVal bool) {
	long := map[string]string{"--input": "input", "--output": "output"}
	short := map[string]string{"-i": "input", "-o": "output"}

	if n, ok := long[a]; ok {
		return n, "", false
	}
	if k, v, ok := strings.Cut(a, "="); ok && strings.HasPrefix(a, "--") {
		if n, ok := long[k]; ok {
			return n, v, true
		}
		return "", "", false
	}
	if n, ok := short[a]; ok {
		return n, "", false
	}
	if len(a) > 2 {
		if n, ok := short[a[:2]]; ok {
			return n, a[2:], true
		}
	}
	return "", "", false
}

func unwrapRun(err error) error {
	var re *run.Error
	if errors.As(err, &re) && re.Err != nil {
		return re.Err
	}
	return err
}

func stageLabel(err error) string {
	var re *run.Error
	if !errors.As(err, &re) {
		return "运行"
	}
	switch re.Stage {
	case run.StageResolve:
		return "定位输入文件"
	case run.StageExtract:
		return "提取时间标记"
	case run.StageWrite:
		return "写入输出文件"
	default:
		return "运行"
	}
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help"
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `用法：
  fcpmarker [-i 输入] [-o 输出]

从 FCPXML 或 .fcpxmld 包提取章节标记（chapter-marker）并写入文本文件。

参数：
  -i, --input   输入 FCPXML 文件或 .fcpxmld 包路径（默认 %s）
  -o, --output  输出文本文件路径（默认 %s）
  -h, --help    显示帮助

可选配置文件：当前目录下的 %s（字段 input/output/engine；CLI 参数优先）。
`, config.DefaultInput, config.DefaultOutput, config.FileName)
}
