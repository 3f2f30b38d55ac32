package timecode

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse 把 FCPXML 的时间文本（已去掉结尾的 "s"）转换为秒。
//
// 支持两种形态：
// - 有理数：形如 "2702600/30000"（分子/分母，浮点除法）
// - 十进制：形如 "65" 或 "12.5"
//
// 任何解析失败（非数字、多个 '/'、分母为 0、结果非有限值）都返回 0，不向上抛错：
// 单个标记的时间坏了不应影响其余标记。
func Parse(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	var v float64
	if strings.Contains(text, "/") {
		parts := strings.Split(text, "/")
		if len(parts) != 2 {
			return 0
		}
		num, err := parseNumber(parts[0])
		if err != nil {
			return 0
		}
		den, err := parseNumber(parts[1])
		if err != nil || den == 0 {
			return 0
		}
		v = num / den
	} else {
		n, err := parseNumber(text)
		if err != nil {
			return 0
		}
		v = n
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Format 把秒数格式化为 "MM:SS"（两位补零，分钟不封顶）。
//
// 先取整秒再做整除/取模；负数与非有限值按 0 处理（FCPXML 里不会出现这类时间）。
// 超出 int64 的整秒数走 big.Int，保证整除结果精确。
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	whole := math.Floor(seconds)
	if whole < math.MaxInt64 {
		n := int64(whole)
		return fmt.Sprintf("%02d:%02d", n/60, n%60)
	}

	bi, _ := new(big.Float).SetFloat64(whole).Int(nil)
	q, r := new(big.Int).QuoRem(bi, big.NewInt(60), new(big.Int))
	return fmt.Sprintf("%02d:%02d", q, r)
}
