package feature

import "github.com/goliatone/go-featuregrid/pkg/icon"

var homepage = NewList(
	Descriptor{
		Title:       "最佳实践",
		Icon:        icon.Mountain,
		Description: "合理的框架选择，良好的工程实践助你持续产出高质量代码。",
	},
	Descriptor{
		Title:       "丰富功能",
		Icon:        icon.Tree,
		Description: "提炼了典型的业务模型，提供了丰富的功能组件。",
	},
	Descriptor{
		Title:       "最新技术栈",
		Icon:        icon.React,
		Description: "使用 React / Zustand / React-Router / Vite / Ant-Design 等前端前沿技术开发。",
	},
)

// Homepage returns the built-in three item list shown on the site homepage.
func Homepage() List {
	return homepage
}
