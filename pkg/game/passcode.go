package game

// Verdict 密码校验结果
type Verdict int

const (
	// Denied 拒绝，停留在 Gate 页，可无限重试
	Denied Verdict = iota
	// Granted 通过
	Granted
)

// String 返回结果名称
func (v Verdict) String() string {
	if v == Granted {
		return "Granted"
	}
	return "Denied"
}

// PasscodeGate 通行密码校验
//
// 密码来自仓库外的配置（环境变量或本地文件），这是保密手段而不是安全边界：
// 只做精确字符串比较，没有锁定和限速。
// 密码为空时所有输入都被拒绝。
type PasscodeGate struct {
	secret string
}

// NewPasscodeGate 创建密码校验器
func NewPasscodeGate(secret string) *PasscodeGate {
	return &PasscodeGate{secret: secret}
}

// Verify 校验输入
func (g *PasscodeGate) Verify(input string) Verdict {
	if g == nil || g.secret == "" {
		return Denied
	}
	if input == g.secret {
		return Granted
	}
	return Denied
}

// Configured 是否配置了密码
func (g *PasscodeGate) Configured() bool {
	return g != nil && g.secret != ""
}
