// Package reorder 拖拽排序的手势状态机, 与具体渲染解耦.
//
// Surface 提供当前各元素的包围盒, View 接收渲染指令（幽灵元素、隐藏原元素、重新编号、
// 全局指针监听的安装与移除）. 浏览器端 web/static/script.js 按同样的规则实现.
package reorder

import "math"

// Button 指针按键
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// State 手势状态
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Surface 列表的当前布局. 拖拽期间原元素保持占位, 所以下标与 items 一一对应.
type Surface interface {
	Len() int
	Bounds(index int) Rect
}

// View 渲染回调
type View interface {
	// ShowGhost 创建跟随指针的克隆元素, 置于最上层且不拦截指针事件
	ShowGhost(index int, at Rect)
	MoveGhost(at Rect)
	RemoveGhost()
	// SetHidden 原元素透明但保留占位, 避免拖拽时其他元素重排
	SetHidden(index int, hidden bool)
	// Reinsert 把 from 处的元素移动到 to 处
	Reinsert(from, to int)
	// Relabel 重新显示从 1 开始的序号
	Relabel(labels []int)
	// Track 安装全局 move/up 监听, Untrack 移除
	Track()
	Untrack()
}

// NopView 不做任何渲染
type NopView struct{}

func (NopView) ShowGhost(int, Rect) {}
func (NopView) MoveGhost(Rect) {}
func (NopView) RemoveGhost() {}
func (NopView) SetHidden(int, bool) {}
func (NopView) Reinsert(int, int) {}
func (NopView) Relabel([]int) {}
func (NopView) Track() {}
func (NopView) Untrack() {}

// Result 一次完整手势的结果
type Result struct {
	From int
	To   int
}

// Reorderer 维护有序列表和单个拖拽手势
type Reorderer[T any] struct {
	items   []T
	surface Surface
	view    View

	state   State
	origin  int
	pending int
	offset  Point
	ghost   Rect
}

func New[T any](items []T, surface Surface, view View) *Reorderer[T] {
	if view == nil {
		view = NopView{}
	}
	return &Reorderer[T]{
		items:   append([]T(nil), items...),
		surface: surface,
		view:    view,
	}
}

// Items 当前顺序的拷贝
func (r *Reorderer[T]) Items() []T {
	return append([]T(nil), r.items...)
}

// SetItems 替换整个列表（例如上传完成后）, 拖拽中调用无效
func (r *Reorderer[T]) SetItems(items []T) bool {
	if r.state == Dragging {
		return false
	}
	r.items = append([]T(nil), items...)
	r.view.Relabel(Labels(len(r.items)))
	return true
}

func (r *Reorderer[T]) State() State {
	return r.state
}

// PendingIndex 当前松手会落到的位置, 仅拖拽中有意义
func (r *Reorderer[T]) PendingIndex() int {
	return r.pending
}

// Ghost 幽灵元素当前位置
func (r *Reorderer[T]) Ghost() Rect {
	return r.ghost
}

// OnGestureStart 主键按下开始拖拽. 非主键、已在拖拽中或下标越界时忽略并返回 false.
func (r *Reorderer[T]) OnGestureStart(p Point, index int, button Button) bool {
	if button != ButtonPrimary || r.state == Dragging {
		return false
	}
	if index < 0 || index >= len(r.items) {
		return false
	}

	rect := r.surface.Bounds(index)
	r.state = Dragging
	r.origin = index
	// 没有移动就松手等于原地放下
	r.pending = index
	r.offset = p.Sub(Point{X: rect.Left, Y: rect.Top})
	r.ghost = rect

	r.view.ShowGhost(index, rect)
	r.view.SetHidden(index, true)
	r.view.Track()
	return true
}

// OnGestureMove 移动幽灵元素, 并取中心离幽灵中心最近的其他元素作为目标位置
func (r *Reorderer[T]) OnGestureMove(p Point) {
	if r.state != Dragging {
		return
	}

	r.ghost = r.ghost.At(p.Sub(r.offset))
	r.view.MoveGhost(r.ghost)

	r.pending = nearest(r.surface, r.origin, r.ghost.Center())
}

// OnGestureEnd 松手提交移动, 回到 Idle 并释放拖拽资源
func (r *Reorderer[T]) OnGestureEnd() (Result, bool) {
	if r.state != Dragging {
		return Result{}, false
	}

	from, to := r.origin, r.pending
	if to > len(r.items)-1 {
		to = len(r.items) - 1
	}
	if to < 0 {
		to = 0
	}

	r.items = Move(r.items, from, to)
	r.view.Reinsert(from, to)
	r.view.Relabel(Labels(len(r.items)))

	r.view.RemoveGhost()
	r.view.SetHidden(to, false)
	r.view.Untrack()

	r.state = Idle
	r.origin, r.pending = 0, 0
	r.offset, r.ghost = Point{}, Rect{}
	return Result{From: from, To: to}, true
}

// nearest 返回除 skip 外中心离 c 最近的元素下标, 距离相同取先遍历到的; 没有其他元素时为 0
func nearest(s Surface, skip int, c Point) int {
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < s.Len(); i++ {
		if i == skip {
			continue
		}
		if d := Distance(s.Bounds(i).Center(), c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
