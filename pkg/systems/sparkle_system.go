package systems

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// sparkleEasings 粒子缓动候选
var sparkleEasings = []utils.EasingFunc{
	utils.EaseInOutSine,
	utils.EaseInOutQuad,
	utils.EaseInOutCubic,
}

// SparkleSystem 背景闪光粒子系统
//
// 职责：
//   - 一次性创建 cfg.Count 个闪光粒子（随机位置、颜色、尺寸、时长、延迟）
//   - 每帧推进粒子的往返补间，派生上移、缩放和透明度
//   - 绘制为实心圆
//
// 粒子场独立于屏幕序号：由 App 持有，切换屏幕时不重建。
// 拥有自己的 EntityManager，Dispose 后实体全部释放，后续调用均为空操作。
type SparkleSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.SparkleConfig
	rng           *rand.Rand
	palette       []color.NRGBA

	spawned  bool
	disposed bool
}

// NewSparkleSystem 创建闪光粒子系统
//
// 参数：
//   - cfg: 粒子参数（数量、调色板、尺寸/时长/上移/缩放/延迟范围）
//   - rng: 随机数源，nil 时使用全局随机源
func NewSparkleSystem(cfg config.SparkleConfig, rng *rand.Rand) *SparkleSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	palette := make([]color.NRGBA, 0, len(cfg.Palette))
	for _, hex := range cfg.Palette {
		palette = append(palette, config.MustColor(hex))
	}
	if len(palette) == 0 {
		palette = append(palette, color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xff})
	}

	return &SparkleSystem{
		entityManager: ecs.NewEntityManager(),
		cfg:           cfg,
		rng:           rng,
		palette:       palette,
	}
}

// Spawn 在 width x height 的区域内创建全部粒子
// 已创建或已释放时不做任何事
func (s *SparkleSystem) Spawn(width, height float64) {
	if s.spawned || s.disposed {
		return
	}
	s.spawned = true

	for i := 0; i < s.cfg.Count; i++ {
		s.spawnOne(width, height)
	}
	log.Printf("[SparkleSystem] 创建 %d 个闪光粒子", s.cfg.Count)
}

func (s *SparkleSystem) spawnOne(width, height float64) {
	c := s.cfg

	motion := utils.NewTween(
		0, 1,
		s.between(c.MinDuration, c.MaxDuration),
		s.rng.Float64()*c.MaxDelay,
		sparkleEasings[s.rng.IntN(len(sparkleEasings))],
	)
	motion.Repeat = utils.RepeatForever
	motion.Yoyo = true

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.PositionComponent{
		X: s.rng.Float64() * width,
		Y: s.rng.Float64() * height,
	})
	s.entityManager.AddComponent(id, &components.SparkleComponent{
		Size:        s.between(c.MinSize, c.MaxSize),
		Color:       s.palette[s.rng.IntN(len(s.palette))],
		Rise:        s.between(c.MinRise, c.MaxRise),
		PeakScale:   s.rng.Float64() * c.MaxScale,
		PeakOpacity: s.rng.Float64(),
		Motion:      motion,
	})
}

// between 返回 [lo, hi) 内的随机数
func (s *SparkleSystem) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Update 推进全部粒子动画
func (s *SparkleSystem) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.SparkleComponent](s.entityManager) {
		sparkle, _ := ecs.GetComponent[*components.SparkleComponent](s.entityManager, id)
		sparkle.Motion.Update(deltaTime)

		v := sparkle.Motion.Value()
		sparkle.OffsetY = -sparkle.Rise * v
		sparkle.Scale = sparkle.PeakScale * v
		sparkle.Opacity = sparkle.PeakOpacity * v
	}
}

// Draw 绘制全部粒子
func (s *SparkleSystem) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.SparkleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		sparkle, _ := ecs.GetComponent[*components.SparkleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		radius := sparkle.Size / 2 * sparkle.Scale
		if radius <= 0 || sparkle.Opacity <= 0 {
			continue
		}

		clr := sparkle.Color
		clr.A = uint8(float64(clr.A) * utils.Clamp01(sparkle.Opacity))
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y+sparkle.OffsetY), float32(radius), clr, true)
	}
}

// Dispose 释放全部粒子，可重复调用
func (s *SparkleSystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.entityManager.DestroyAll()
	log.Printf("[SparkleSystem] 已释放")
}

// Count 返回存活粒子数量
func (s *SparkleSystem) Count() int {
	return s.entityManager.EntityCount()
}

// Sparkles 返回全部粒子组件（按创建顺序）
func (s *SparkleSystem) Sparkles() []*components.SparkleComponent {
	ids := ecs.GetEntitiesWith1[*components.SparkleComponent](s.entityManager)
	result := make([]*components.SparkleComponent, 0, len(ids))
	for _, id := range ids {
		sparkle, _ := ecs.GetComponent[*components.SparkleComponent](s.entityManager, id)
		result = append(result, sparkle)
	}
	return result
}

// Positions 返回全部粒子的基准位置（按创建顺序）
func (s *SparkleSystem) Positions() []*components.PositionComponent {
	ids := ecs.GetEntitiesWith1[*components.SparkleComponent](s.entityManager)
	result := make([]*components.PositionComponent, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		result = append(result, pos)
	}
	return result
}
