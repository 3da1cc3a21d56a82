//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// Makefile 中的 build-android 和 build-ios 目标会自动：
//  1. 运行 prepare-mobile 复制 data/mission.yaml 到此目录
//  2. 使用 -tags mobile 进行构建
package mobile

import "embed"

//go:embed data/mission.yaml
var dataFS embed.FS
