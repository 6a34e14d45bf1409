package utils

// Task 调度器中的一个定时任务
type Task struct {
	interval  float64
	elapsed   float64
	repeat    bool
	fn        func()
	cancelled bool
}

// Cancel 取消任务；已取消的任务不会再触发
func (t *Task) Cancel() {
	t.cancelled = true
}

// Active 任务是否仍会触发
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// minTaskInterval 防止 0 间隔任务在单帧内无限触发
const minTaskInterval = 1e-3

// Scheduler 由帧时间驱动的定时任务集合
//
// 每个组件持有自己的 Scheduler，卸载时调用 CancelAll 即可保证
// 不会遗留计时器。调度器不启动任何 goroutine，全部回调都在
// Update 的调用线程（游戏主循环）中执行。
type Scheduler struct {
	tasks []*Task
}

// NewScheduler 创建空调度器
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]*Task, 0, 4)}
}

// After 在 delay 秒后执行一次 fn
func (s *Scheduler) After(delay float64, fn func()) *Task {
	return s.add(delay, false, fn)
}

// Every 每隔 interval 秒执行一次 fn，直到任务被取消
func (s *Scheduler) Every(interval float64, fn func()) *Task {
	return s.add(interval, true, fn)
}

func (s *Scheduler) add(interval float64, repeat bool, fn func()) *Task {
	if interval < minTaskInterval {
		interval = minTaskInterval
	}
	task := &Task{interval: interval, repeat: repeat, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Update 推进所有任务
//
// 一帧的时间增量可能跨越多个周期（卡顿），此时周期任务会补触发多次。
// 回调中新增的任务从下一帧开始计时。
func (s *Scheduler) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	count := len(s.tasks)
	for i := 0; i < count; i++ {
		task := s.tasks[i]
		if task.cancelled {
			continue
		}
		task.elapsed += deltaTime
		for !task.cancelled && task.elapsed >= task.interval {
			task.elapsed -= task.interval
			if !task.repeat {
				task.cancelled = true
			}
			if task.fn != nil {
				task.fn()
			}
		}
	}

	s.compact()
}

// CancelAll 取消全部任务
// 可以在任务回调内部调用；列表在 Update 结束时压缩
func (s *Scheduler) CancelAll() {
	for _, task := range s.tasks {
		task.cancelled = true
	}
}

// Len 返回仍处于活动状态的任务数量
func (s *Scheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

// compact 移除已取消的任务
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.cancelled {
			kept = append(kept, task)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
