// Package store 提供 core.Store / core.KeyValueStore 的具体实现。
// 接口定义在 core 包（领域层定义接口，基础设施层实现接口）。
//
// 典型用途：
//   - 隐因子发布：训练进程把用户/岗位隐向量写入 Redis，服务进程查表召回
//   - 热门岗位列表：按全局交互量排序的有序集合
//
// 示例：
//
//	var s core.Store = NewMemoryStore()
//	var kv core.KeyValueStore = NewMemoryStore()
package store
