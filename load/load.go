package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"capacitorlab/utils"
)

// Op 场景指令
type Op uint8

// 场景指令常量定义
const (
	OpUnknown    Op = iota // 未知
	OpBattery              // battery V
	OpSize                 // size W [D]
	OpSeparation           // separation S
	OpCharge               // charge Q
	OpSwitch               // switch battery|open|bulb
	OpDrag                 // drag ANGLE
	OpRelease              // release
	OpStep                 // step DT [N]
	OpProbe                // probe +|- X Y [Z]
	OpView                 // view +|- X Y
	OpShow                 // show METER
	OpHide                 // hide METER
	OpReset                // reset
)

// opSpec 指令名称与参数个数
var opSpec = map[Op]struct {
	Name     string
	Min, Max int
}{
	OpBattery:    {Name: "battery", Min: 1, Max: 1},
	OpSize:       {Name: "size", Min: 1, Max: 2},
	OpSeparation: {Name: "separation", Min: 1, Max: 1},
	OpCharge:     {Name: "charge", Min: 1, Max: 1},
	OpSwitch:     {Name: "switch", Min: 1, Max: 1},
	OpDrag:       {Name: "drag", Min: 1, Max: 1},
	OpRelease:    {Name: "release", Min: 0, Max: 0},
	OpStep:       {Name: "step", Min: 1, Max: 2},
	OpProbe:      {Name: "probe", Min: 3, Max: 4},
	OpView:       {Name: "view", Min: 3, Max: 3},
	OpShow:       {Name: "show", Min: 1, Max: 1},
	OpHide:       {Name: "hide", Min: 1, Max: 1},
	OpReset:      {Name: "reset", Min: 0, Max: 0},
}

// String 指令名称
func (op Op) String() string {
	if s, ok := opSpec[op]; ok {
		return s.Name
	}
	return "unknown"
}

// GetNameOp 通过名称获取指令
func GetNameOp(name string) Op {
	name = strings.ToLower(name)
	for op, s := range opSpec {
		if s.Name == name {
			return op
		}
	}
	return OpUnknown
}

// Command 一条场景指令
type Command struct {
	Line int           // 源文件行号
	Op   Op            // 指令
	Args utils.NetList // 参数
}

// String 还原为脚本文本
func (cmd Command) String() string {
	if len(cmd.Args) == 0 {
		return cmd.Op.String()
	}
	return cmd.Op.String() + " " + cmd.Args.Export()
}

// Errorf 带行号的错误
func (cmd Command) Errorf(format string, v ...any) error {
	return fmt.Errorf("第 %d 行 %s: %s", cmd.Line, cmd.Op, fmt.Sprintf(format, v...))
}

// LoadFile 加载场景文件
func LoadFile(filename string) ([]Command, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// LoadString 加载场景文本
func LoadString(s string) ([]Command, error) {
	return Load(strings.NewReader(s))
}

// Load 逐行解析场景，# 之后为注释
func Load(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := utils.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		op := GetNameOp(fields[0])
		if op == OpUnknown {
			return nil, fmt.Errorf("第 %d 行: 未知指令 %q", line, fields[0])
		}
		args, limit := fields[1:], opSpec[op]
		if len(args) < limit.Min || len(args) > limit.Max {
			return nil, fmt.Errorf("第 %d 行: %s 需要 %d-%d 个参数，得到 %d", line, op, limit.Min, limit.Max, len(args))
		}
		cmds = append(cmds, Command{Line: line, Op: op, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// Export 导出场景文本
func Export(w io.Writer, cmds []Command) error {
	writer := bufio.NewWriter(w)
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(writer, cmd.String()); err != nil {
			return err
		}
	}
	return writer.Flush()
}
