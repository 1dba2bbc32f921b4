package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 批处理错误分级：
//   - SCHEMA_MISMATCH / IO_ERROR：致命，整次运行中止
//   - DEGENERATE_SET：可恢复，跳过该品类的下游指标与预测
//   - 未识别品类不是错误，由分桶阶段静默剔除
type DomainError struct {
	Code    string // 错误代码（如 "SCHEMA_MISMATCH", "DEGENERATE_SET"）
	Message string // 错误消息
	Module  string // 模块名称（如 "dataset", "feature", "train"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeSchema     = "SCHEMA_MISMATCH" // 必要列缺失或类型不符
	ErrorCodeIO         = "IO_ERROR"        // 数据源不可读 / 落盘失败
	ErrorCodeDegenerate = "DEGENERATE_SET"  // 品类子集为空或训练集只有单一标签
	ErrorCodeInvalid    = "INVALID_INPUT"   // 输入无效
	ErrorCodeInternal   = "INTERNAL_ERROR"  // 内部错误
)

// 模块名称常量
const (
	ModuleDataset = "dataset" // 数据源模块
	ModuleFeature = "feature" // 特征模块
	ModuleModel   = "model"   // 模型模块
	ModuleTrain   = "train"   // 训练模块
	ModuleStore   = "store"   // 落盘模块
)

// IsSchema 检查错误是否为 SCHEMA_MISMATCH
func IsSchema(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeSchema
	}
	return false
}

// IsDegenerate 检查错误是否为 DEGENERATE_SET
func IsDegenerate(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeDegenerate
	}
	return false
}

// IsIO 检查错误是否为 IO_ERROR
func IsIO(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeIO
	}
	return false
}
