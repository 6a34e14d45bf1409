package utils

import "math"

// RepeatForever 让补间无限循环
const RepeatForever = -1

// Tween 单值补间动画
//
// 由调用方每帧传入 deltaTime 推进，不持有任何计时器：
// 拥有者停止调用 Update 即等同于取消。
//
// 时间轴：
//
//	[Delay][Duration][Duration]...
//
// Repeat 为额外重复次数（0 = 播放一次，RepeatForever = 无限）。
// Yoyo 为 true 时，奇数轮反向播放。
type Tween struct {
	From     float64
	To       float64
	Duration float64 // 单轮时长（秒）
	Delay    float64 // 首轮开始前的延迟（秒）
	Repeat   int
	Yoyo     bool
	Ease     EasingFunc

	elapsed float64
}

// NewTween 创建一次性补间
func NewTween(from, to, duration, delay float64, ease EasingFunc) *Tween {
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		Delay:    delay,
		Ease:     ease,
	}
}

// Update 推进补间时间
func (tw *Tween) Update(deltaTime float64) {
	if deltaTime <= 0 || tw.Done() {
		return
	}
	tw.elapsed += deltaTime
}

// Elapsed 返回已推进的总时间（含延迟）
func (tw *Tween) Elapsed() float64 {
	return tw.elapsed
}

// Reset 回到起点（延迟重新计算）
func (tw *Tween) Reset() {
	tw.elapsed = 0
}

// Started 延迟是否已结束
func (tw *Tween) Started() bool {
	return tw.elapsed >= tw.Delay
}

// Done 有限补间是否播放完毕
func (tw *Tween) Done() bool {
	if tw.Repeat < 0 {
		return false
	}
	return tw.elapsed-tw.Delay >= tw.Duration*float64(tw.Repeat+1)
}

// Progress 返回当前轮内的方向化进度 [0, 1]（未缓动）
func (tw *Tween) Progress() float64 {
	active := tw.elapsed - tw.Delay
	if active <= 0 {
		return 0
	}
	if tw.Duration <= 0 {
		return tw.finalProgress()
	}
	if tw.Done() {
		return tw.finalProgress()
	}

	cycle := math.Floor(active / tw.Duration)
	local := (active - cycle*tw.Duration) / tw.Duration
	if tw.Yoyo && int64(cycle)%2 == 1 {
		return 1 - local
	}
	return local
}

// Value 返回当前补间值
func (tw *Tween) Value() float64 {
	p := tw.Progress()
	if tw.Ease != nil {
		p = tw.Ease(p)
	}
	return Lerp(tw.From, tw.To, p)
}

// finalProgress 结束时的进度：yoyo 且最后一轮为反向时回到起点
func (tw *Tween) finalProgress() float64 {
	if tw.Yoyo && tw.Repeat > 0 && tw.Repeat%2 == 1 {
		return 0
	}
	return 1
}
