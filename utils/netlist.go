package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NetList 场景脚本的一行字段(不含指令名)
type NetList []string

// Fields 拆分一行脚本，去掉 # 之后的注释
func Fields(line string) NetList {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return NetList(strings.Fields(line))
}

// Len 字段数量
func (value NetList) Len() int { return len(value) }

// Float64 解析第i个字段为浮点数，缺失或格式错误返回错误
func (value NetList) Float64(i int) (float64, error) {
	if i >= len(value) {
		return 0, fmt.Errorf("缺少第%d个参数", i+1)
	}
	val, err := strconv.ParseFloat(value[i], 64)
	if err != nil {
		return 0, fmt.Errorf("第%d个参数不是数值: %q", i+1, value[i])
	}
	return val, nil
}

// ParseFloat64 解析64位浮点数，缺失时返回默认值
func (value NetList) ParseFloat64(i int, defaultValue float64) (float64, error) {
	if i >= len(value) {
		return defaultValue, nil
	}
	return value.Float64(i)
}

// ParseInt 解析整数，缺失时返回默认值
func (value NetList) ParseInt(i int, defaultValue int) (int, error) {
	if i >= len(value) {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(value[i])
	if err != nil {
		return 0, fmt.Errorf("第%d个参数不是整数: %q", i+1, value[i])
	}
	return val, nil
}

// String 获取第i个字段，缺失返回错误
func (value NetList) String(i int) (string, error) {
	if i >= len(value) {
		return "", fmt.Errorf("缺少第%d个参数", i+1)
	}
	return value[i], nil
}

// Export 转换回脚本文本
func (value NetList) Export() string { return strings.Join(value, " ") }
