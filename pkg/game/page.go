package game

// PageID 标识任务流程中的页面
// 页面按固定顺序排列，任意时刻只有一个页面处于激活状态
type PageID int

const (
	// PageGate 任务控制台：输入通行密码
	PageGate PageID = iota
	// PageLaunch 发射页：开始任务按钮
	PageLaunch
	// PageTerminal 终端页：打字机逐字输出
	PageTerminal
	// PageStory 故事页：文字依次淡入
	PageStory
	// PageConstellation 星座页：点击星座揭示隐藏信息
	PageConstellation
	// PageMemoryGallery 回忆星系：点击星球打开回忆弹窗
	PageMemoryGallery
	// PageGameBridge 小游戏入口：进入小游戏或跳过
	PageGameBridge
	// PageMoon 月球页：文字淡入 + 秘密信息
	PageMoon
	// PageProposal 告白页：Yes / No 按钮
	PageProposal
	// PageCelebration 庆祝页：五彩纸屑
	PageCelebration
)

// pageCount 页面总数
const pageCount = int(PageCelebration) + 1

var pageNames = [pageCount]string{
	"Gate",
	"Launch",
	"Terminal",
	"Story",
	"Constellation",
	"MemoryGallery",
	"GameBridge",
	"Moon",
	"Proposal",
	"Celebration",
}

// String 返回页面名称（用于日志）
func (p PageID) String() string {
	if !p.Valid() {
		return "Page(?)"
	}
	return pageNames[p]
}

// Valid 检查页面ID是否在固定页面集合内
func (p PageID) Valid() bool {
	return p >= PageGate && int(p) < pageCount
}

// AllPages 按顺序返回全部页面
func AllPages() []PageID {
	pages := make([]PageID, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		pages = append(pages, PageID(i))
	}
	return pages
}
