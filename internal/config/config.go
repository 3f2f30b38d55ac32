package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/John-Robertt/fcpmarker/internal/domain"
	"github.com/John-Robertt/fcpmarker/internal/marker"
)

// FileName 是可选配置文件的固定名称（位于当前工作目录）。
const FileName = "fcpmarker.json"

const (
	// ErrCodeInvalid 表示配置文件无法读取/解析，或合并后的字段不合法。
	ErrCodeInvalid = domain.ErrCodeConfigInvalid
)

const (
	DefaultInput  = "./Info.fcpxml"
	DefaultOutput = "./FCPtimemarker.txt"
	DefaultEngine = marker.EnginePattern
)

// CLIArgs 保留"是否显式指定"的信息，保证 CLI 能覆盖配置文件。
type CLIArgs struct {
	Input    string
	InputSet bool

	Output    string
	OutputSet bool
}

// FileConfig 对应 fcpmarker.json。
type FileConfig struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Engine string `json:"engine"`
}

// EffectiveConfig 是合并后的最终配置（实现层直接消费）。
type EffectiveConfig struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Engine string `json:"engine"`
}

// Validate 校验合并后的配置。
//
// input 不在这里校验：空路径交给 resolve 按"输入文件不存在"报告。
func (c EffectiveConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Output, validation.Required.Error("不能为空")),
		validation.Field(&c.Engine,
			validation.Required.Error("不能为空"),
			validation.In(marker.EnginePattern, marker.EngineDOM).Error("只能是 pattern 或 dom"),
		),
	)
}

// Error 是配置阶段的结构化错误（带 error_code）。
//
// Path 为空表示问题来自 CLI 参数本身（没有读到配置文件）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		if e.Err != nil {
			return fmt.Sprintf("%s：参数无效：%v", e.Code, e.Err)
		}
		return fmt.Sprintf("%s：参数无效", e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 读取 <cwd>/fcpmarker.json（可选）并与 CLI 参数合并。
//
// 覆盖优先级（固定）：CLI > 配置文件 > 内置默认。
// engine 只能由配置文件指定（CLI 不暴露）。
//
// 配置文件里的相对路径按 cwd 解析；CLI 与默认值原样保留（交给 OS 按 cwd 解析）。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cfgPath := filepath.Join(cwd, FileName)
	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}

	eff := EffectiveConfig{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Engine: DefaultEngine,
	}

	if cli.InputSet {
		eff.Input = cli.Input
	} else if strings.TrimSpace(fc.Input) != "" {
		eff.Input = fromCwd(cwd, fc.Input)
	}

	if cli.OutputSet {
		eff.Output = cli.Output
	} else if strings.TrimSpace(fc.Output) != "" {
		eff.Output = fromCwd(cwd, fc.Output)
	}

	if strings.TrimSpace(fc.Engine) != "" {
		eff.Engine = strings.ToLower(strings.TrimSpace(fc.Engine))
	}

	if err := eff.Validate(); err != nil {
		e := &Error{Code: ErrCodeInvalid, Err: err}
		if exists {
			e.Path = cfgPath
		}
		return EffectiveConfig{}, e
	}
	return eff, nil
}

func fromCwd(cwd, p string) string {
	p = strings.TrimSpace(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// readFileConfig 读取并解析 JSON 配置文件；exists=false 表示文件不存在（不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := json.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
