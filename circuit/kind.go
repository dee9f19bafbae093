package circuit

import (
	"fmt"
	"strings"

	sw "capacitorlab/element/switch"
)

// Kind 电路类型
type Kind uint8

// 电路类型常量
const (
	KindCapacitance Kind = iota // 电池 + 电容
	KindLightBulb               // 电池 + 电容 + 灯泡
)

// kindName 类型名称映射
var kindName = map[Kind]string{
	KindCapacitance: "capacitance",
	KindLightBulb:   "lightbulb",
}

// String 返回电路类型名称
func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HasLightBulb 是否带灯泡
func (k Kind) HasLightBulb() bool { return k == KindLightBulb }

// ParseKind 通过名称获取电路类型
func ParseKind(name string) (Kind, error) {
	for k, n := range kindName {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return KindCapacitance, fmt.Errorf("未知电路类型: %s", name)
}

// Options 电路构造参数
type Options struct {
	Kind       Kind      // 电路类型
	Layout     sw.Layout // 开关分区布局
	Capacitors int       // 电容数量，至少为1
}
