package game

import (
	"fmt"
	"log"
)

// Step 贺卡的屏幕序号（Sequence Position）
type Step int

const (
	// StepCover 封面
	StepCover Step = iota
	// StepMessage 寄语
	StepMessage
	// StepReveal 揭晓（终点）
	StepReveal
)

// String 返回屏幕名称
func (s Step) String() string {
	switch s {
	case StepCover:
		return "Cover"
	case StepMessage:
		return "Message"
	case StepReveal:
		return "Reveal"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// IsTerminal 是否为最后一屏
func (s Step) IsTerminal() bool {
	return s == StepReveal
}

// AdvanceFunc 屏幕请求前进时调用的回调
// from 为发起请求的屏幕；与当前位置不符的请求会被忽略
type AdvanceFunc func(from Step)

// SceneFactory 场景工厂函数类型
// 终点屏幕的 advance 为 nil
type SceneFactory func(step Step, advance AdvanceFunc) Scene

// Sequence 屏幕顺序控制器
//
// 持有唯一的屏幕序号，只能从 Cover -> Message -> Reveal 单调前进，
// 每次前进恰好一步；Reveal 之后不再有任何转换。
// 全部调用都发生在游戏主循环中，不需要加锁。
type Sequence struct {
	position  Step
	started   bool
	manager   *SceneManager
	factory   SceneFactory
	listeners []func(Step)
}

// NewSequence 创建顺序控制器
func NewSequence(manager *SceneManager, factory SceneFactory) *Sequence {
	return &Sequence{
		position: StepCover,
		manager:  manager,
		factory:  factory,
	}
}

// Start 挂载封面；重复调用无效果
func (s *Sequence) Start() {
	if s.started {
		return
	}
	s.started = true
	s.mount(s.position)
	log.Printf("[Sequence] 启动于 %s", s.position)
}

// Position 返回当前屏幕序号
func (s *Sequence) Position() Step {
	return s.position
}

// OnChange 注册位置变化监听器
func (s *Sequence) OnChange(listener func(Step)) {
	s.listeners = append(s.listeners, listener)
}

// Advance 从 from 前进到下一屏
//
// 返回：
//   - bool: 是否发生了前进
//
// 以下情况不做任何改变：未启动、from 不是当前屏幕、已处于终点。
func (s *Sequence) Advance(from Step) bool {
	if !s.started {
		return false
	}
	if from != s.position {
		log.Printf("[Sequence] 忽略来自 %s 的前进请求（当前 %s）", from, s.position)
		return false
	}
	if s.position.IsTerminal() {
		return false
	}

	s.position++
	s.mount(s.position)
	log.Printf("[Sequence] %s -> %s", from, s.position)

	for _, listener := range s.listeners {
		listener(s.position)
	}
	return true
}

// mount 通过工厂创建场景并交给 SceneManager
func (s *Sequence) mount(step Step) {
	var advance AdvanceFunc
	if !step.IsTerminal() {
		advance = func(from Step) { s.Advance(from) }
	}

	scene := s.factory(step, advance)
	if scene == nil {
		log.Printf("[Sequence] 错误: 无法创建场景: %s", step)
		return
	}
	s.manager.SwitchTo(scene)
}
