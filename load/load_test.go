package load

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `# 充电后断开再拉开极板
battery 1.5
switch open    # 断开
separation 0.01

drag -0.3
release
step 0.1 5
probe + 0.0305 0.0335
SHOW voltmeter
reset
`

func TestLoadString(t *testing.T) {
	cmds, err := LoadString(scenario)
	require.NoError(t, err)
	require.Len(t, cmds, 9)

	ops := []Op{OpBattery, OpSwitch, OpSeparation, OpDrag, OpRelease, OpStep, OpProbe, OpShow, OpReset}
	for i, op := range ops {
		assert.Equal(t, op, cmds[i].Op, "第%d条", i)
	}
	assert.Equal(t, 2, cmds[0].Line)
	assert.Equal(t, 6, cmds[3].Line, "空行也计入行号")
	assert.Equal(t, "open", cmds[1].Args[0], "注释不进入参数")
	assert.Equal(t, "step 0.1 5", cmds[5].String())
	assert.Equal(t, "reset", cmds[8].String())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"未知指令", "battery 1\nfly 2\n", "第 2 行"},
		{"参数过少", "probe + 1\n", "第 1 行"},
		{"参数过多", "\n\nrelease now\n", "第 3 行"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetNameOp(t *testing.T) {
	for op, s := range opSpec {
		assert.Equal(t, op, GetNameOp(s.Name))
		assert.Equal(t, s.Name, op.String())
	}
	assert.Equal(t, OpUnknown, GetNameOp("charge!"))
	assert.Equal(t, "unknown", OpUnknown.String())
}

func TestCommandErrorf(t *testing.T) {
	cmd := Command{Line: 7, Op: OpBattery}
	assert.EqualError(t, cmd.Errorf("bad %d", 1), "第 7 行 battery: bad 1")
}

func TestExportRoundTrip(t *testing.T) {
	cmds, err := LoadString(scenario)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, cmds))
	again, err := LoadString(buf.String())
	require.NoError(t, err)
	require.Len(t, again, len(cmds))
	for i := range cmds {
		assert.Equal(t, cmds[i].Op, again[i].Op)
		assert.Equal(t, cmds[i].Args, again[i].Args)
	}
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "charge.lab")
	require.NoError(t, os.WriteFile(name, []byte(scenario), 0o644))
	cmds, err := LoadFile(name)
	require.NoError(t, err)
	assert.Len(t, cmds, 9)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.lab"))
	assert.Error(t, err)
}
