//go:build mobile

package utils

// IsMobile 移动端（ebitenmobile 绑定的 Android / iOS 包）始终返回 true
// 此时窗口由系统管理，全屏切换无效
func IsMobile() bool {
	return true
}
