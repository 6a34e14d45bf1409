package config

// 布局配置常量
// 本文件定义了贺卡各屏幕的布局参数。坐标以窗口左上角为原点，
// 按 800x600 的逻辑分辨率设计，窗口尺寸变化时按比例使用。

// Cover Layout (封面布局)
const (
	// CoverPanelWidth 封面面板宽度（像素）
	CoverPanelWidth = 420.0
	// CoverPanelHeight 封面面板高度（像素）
	CoverPanelHeight = 300.0
	// CoverPanelRise 面板入场时上移的距离
	CoverPanelRise = 20.0
	// CoverTitleSize 标题字号
	CoverTitleSize = 64.0
	// CoverSubtitleSize 副标题字号
	CoverSubtitleSize = 16.0
	// CoverButtonWidth "打开"按钮宽度
	CoverButtonWidth = 200.0
	// CoverButtonHeight "打开"按钮高度
	CoverButtonHeight = 52.0
	// CoverExitScale 封面退场时放大到的倍数
	CoverExitScale = 1.1
)

// Message Layout (寄语页布局)
const (
	// MessageMaxWidth 寄语文字最大行宽
	MessageMaxWidth = 560.0
	// MessageGreetingSize 称呼字号
	MessageGreetingSize = 34.0
	// MessageQuoteSize 引文字号
	MessageQuoteSize = 22.0
	// MessageNoteSize 附言字号
	MessageNoteSize = 18.0
	// MessageLinkSize 链接字号
	MessageLinkSize = 20.0
	// MessageBlockGap 段落间距
	MessageBlockGap = 28.0
	// MessageChildRise 每段文字入场时上移的距离
	MessageChildRise = 20.0
	// MessageExitRise 寄语页退场时上移的距离
	MessageExitRise = 50.0
)

// Reveal Layout (揭晓页布局)
const (
	// PolaroidWidth 相框宽度
	PolaroidWidth = 320.0
	// PolaroidHeight 相框高度（含底部留白）
	PolaroidHeight = 500.0
	// PolaroidPadding 相框内边距
	PolaroidPadding = 16.0
	// PolaroidPhotoHeight 照片区域高度（3:4 比例）
	PolaroidPhotoHeight = (PolaroidWidth - 2*PolaroidPadding) * 4 / 3
	// RevealHeadingSize 标题字号
	RevealHeadingSize = 28.0
	// RevealSignatureSize 署名字号
	RevealSignatureSize = 14.0
	// MuteButtonSize 静音按钮边长
	MuteButtonSize = 40.0
	// MuteButtonMargin 静音按钮距窗口右上角的距离
	MuteButtonMargin = 24.0
)

// Animation Timing (动画时间，秒)
const (
	// SceneExitDuration 屏幕退场时长
	SceneExitDuration = 0.5
	// CoverFadeInDuration 封面淡入时长
	CoverFadeInDuration = 0.5
	// CoverPanelDelay 封面面板入场延迟
	CoverPanelDelay = 0.5
	// CoverPanelDuration 封面面板入场时长
	CoverPanelDuration = 1.0
	// MessageChildrenDelay 寄语首段延迟
	MessageChildrenDelay = 0.5
	// MessageStagger 寄语段落间隔
	MessageStagger = 0.8
	// MessageChildDuration 每段入场时长
	MessageChildDuration = 0.8
	// RevealFadeInDuration 揭晓页淡入时长（配合音乐前奏放慢）
	RevealFadeInDuration = 2.0
	// PolaroidDelay 相框入场延迟（稍等音乐开始）
	PolaroidDelay = 0.5
	// PolaroidDuration 相框弹入时长
	PolaroidDuration = 1.6
	// PolaroidStartRotation 相框初始旋转角度（度）
	PolaroidStartRotation = -2.0
	// PolaroidStartScale 相框初始缩放
	PolaroidStartScale = 0.8
	// KenBurnsDuration 照片缓慢缩放时长
	KenBurnsDuration = 15.0
	// KenBurnsStartScale 照片初始缩放
	KenBurnsStartScale = 1.2
	// RevealHeadingDelay 标题出现延迟
	RevealHeadingDelay = 2.0
	// RevealSignatureDelay 署名出现延迟
	RevealSignatureDelay = 2.5
	// RevealTextDuration 标题/署名淡入时长
	RevealTextDuration = 1.0
	// MusicHintPeriod 音符提示脉冲周期
	MusicHintPeriod = 2.0
)
