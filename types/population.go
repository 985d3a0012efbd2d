package types

// population.go
// 验证者种群定义

// Population 单一机制的验证者种群
// 构建完成后不可变: 属性只在构建时随机生成一次,
// 重掷属性必须构建新的种群, 不允许原地修改
type Population[V Validator] struct {
	Mechanism Mechanism `json:"mechanism"` // 种群所属机制
	Members   []V       `json:"members"`   // 全部验证者(同一变体, ID互不相同)
}

// NewPopulation 创建种群
// 成员切片会被拷贝一份, 调用方后续修改不影响种群
func NewPopulation[V Validator](mechanism Mechanism, members []V) *Population[V] {
	copied := make([]V, len(members))
	copy(copied, members)
	return &Population[V]{
		Mechanism: mechanism,
		Members:   copied,
	}
}

// Size 获取种群大小
func (p *Population[V]) Size() int {
	return len(p.Members)
}

// GetByID 根据ID查找验证者
func (p *Population[V]) GetByID(id string) (V, bool) {
	for _, v := range p.Members {
		if v.GetID() == id {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Contains 判断ID是否属于本种群
func (p *Population[V]) Contains(id string) bool {
	_, ok := p.GetByID(id)
	return ok
}
