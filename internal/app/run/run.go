package run

import (
	"fmt"

	"github.com/John-Robertt/fcpmarker/internal/config"
	"github.com/John-Robertt/fcpmarker/internal/domain"
	"github.com/John-Robertt/fcpmarker/internal/infra/fsx"
	"github.com/John-Robertt/fcpmarker/internal/marker"
	"github.com/John-Robertt/fcpmarker/internal/resolve"
)

// Stage 标明失败发生在哪个阶段。
type Stage string

const (
	StageResolve Stage = "resolve"
	StageExtract Stage = "extract"
	StageWrite   Stage = "write"
)

// Error 是 run 阶段的可追溯错误。
type Error struct {
	Stage Stage
	Code  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stage=%s code=%s: %v", e.Stage, e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Execute 执行一次完整流程：定位输入 -> 提取标记 -> 写出文本。
//
// 约束：定位失败时直接返回，不会创建/覆盖输出文件。
func Execute(eff config.EffectiveConfig) (domain.Summary, error) {
	return ExecuteWithObserver(eff, nil)
}

// ExecuteWithObserver 与 Execute 相同，但会把阶段事件发给 obs（可为 nil）。
func ExecuteWithObserver(eff config.EffectiveConfig, obs Observer) (domain.Summary, error) {
	s := domain.Summary{
		Input:  eff.Input,
		Output: eff.Output,
		Engine: eff.Engine,
	}

	sc, err := marker.ScannerFor(eff.Engine)
	if err != nil {
		return s, &Error{Stage: StageExtract, Code: domain.ErrCodeConfigInvalid, Err: err}
	}

	resolved, err := resolve.Resolve(eff.Input)
	if err != nil {
		code := domain.ErrCodeIOFailed
		if resolve.IsNotFound(err) {
			code = domain.ErrCodeInputNotFound
		}
		return s, &Error{Stage: StageResolve, Code: code, Err: err}
	}
	s.Resolved = resolved
	if obs != nil {
		obs.OnResolved(eff.Input, resolved)
	}

	lines, err := marker.ExtractFile(resolved, sc)
	if err != nil {
		return s, &Error{Stage: StageExtract, Code: domain.ErrCodeIOFailed, Err: err}
	}

	if err := fsx.WriteFileReplace(eff.Output, marker.Render(lines)); err != nil {
		return s, &Error{Stage: StageWrite, Code: domain.ErrCodeIOFailed, Err: err}
	}
	s.Count = len(lines)

	if obs != nil {
		obs.OnDone(s)
	}
	return s, nil
}
