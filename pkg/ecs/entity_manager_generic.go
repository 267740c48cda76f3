package ecs

import "reflect"

// 泛型辅助函数
// 组件类型由类型参数推导，调用方无需手写 reflect.TypeOf(&X{})
//
// 用法:
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
//	ids := ecs.GetEntitiesWith1[*components.ObstacleComponent](em)

// typeOf 返回类型参数 T 对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetEntitiesWith1 查询拥有 T1 组件的实体（按创建顺序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// DestroyAllWith 标记所有拥有 T 组件的实体待删除
// 返回被标记的实体数量
func DestroyAllWith[T any](em *EntityManager) int {
	ids := GetEntitiesWith1[T](em)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	return len(ids)
}
