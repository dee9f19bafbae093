package utils

import "math"

// ListenerID 监听注册标记，用于取消监听
type ListenerID uint32

// Listener 属性变化回调
type Listener[T any] func(newValue, oldValue T)

// ReadOnly 只读属性接口
// @ 外部视图层通过 Get 读取当前值，通过 Link 订阅变化.
type ReadOnly[T comparable] interface {
	Get() T                                   // 当前值
	Link(listener Listener[T]) ListenerID     // 订阅并立即回调一次
	LazyLink(listener Listener[T]) ListenerID // 订阅但不立即回调
	Unlink(id ListenerID) bool                // 取消订阅
}

type listenerEntry[T any] struct {
	id ListenerID
	fn Listener[T]
}

// Property 可观察属性
// @ 设置与当前值相等的值不会触发通知，联动属性之间因此不会无限递归.
// @ 通知按注册顺序同步执行，Set 返回时所有依赖都已更新.
type Property[T comparable] struct {
	value     T                  // 当前值
	initial   T                  // 初始值，Reset 使用
	listeners []listenerEntry[T] // 按注册顺序
	nextID    ListenerID         // 下一个可用标记
}

// NewProperty 创建属性
func NewProperty[T comparable](value T) *Property[T] {
	return &Property[T]{value: value, initial: value}
}

// Get 当前值
func (p *Property[T]) Get() T { return p.value }

// Set 设置值，相等时不通知
func (p *Property[T]) Set(value T) {
	old := p.value
	if same(old, value) {
		return
	}
	p.value = value
	p.notify(value, old)
}

// Reset 恢复初始值
func (p *Property[T]) Reset() { p.Set(p.initial) }

// Link 订阅并立即以当前值回调一次
func (p *Property[T]) Link(listener Listener[T]) ListenerID {
	id := p.LazyLink(listener)
	listener(p.value, p.value)
	return id
}

// LazyLink 订阅变化
func (p *Property[T]) LazyLink(listener Listener[T]) ListenerID {
	p.nextID++
	p.listeners = append(p.listeners, listenerEntry[T]{id: p.nextID, fn: listener})
	return p.nextID
}

// Unlink 取消订阅
func (p *Property[T]) Unlink(id ListenerID) bool {
	for i, l := range p.listeners {
		if l.id == id {
			p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount 监听数量
func (p *Property[T]) ListenerCount() int { return len(p.listeners) }

func (p *Property[T]) notify(value, old T) {
	// 回调中可能取消订阅，先复制一份
	listeners := append([]listenerEntry[T](nil), p.listeners...)
	for _, l := range listeners {
		l.fn(value, old)
	}
}

// same 判断相等，仅 float64 的 NaN 与 NaN 视为相等
func same[T comparable](a, b T) bool {
	if a == b {
		return true
	}
	x, ok := any(a).(float64)
	if !ok {
		return false
	}
	return math.IsNaN(x) && math.IsNaN(any(b).(float64))
}
