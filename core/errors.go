package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Activity 错误：MALFORMED_RECORD（事件日志损坏，启动期致命）
//   - ALS 错误：EMPTY_MATRIX（交互矩阵为空，无法分解）
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "MALFORMED_RECORD", "NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "activity", "als", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
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
	// 通用错误代码
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 服务不可用
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误

	// 启动期错误代码
	ErrorCodeMalformedRecord = "MALFORMED_RECORD" // 活动日志记录损坏（缺字段/非法 JSON）
	ErrorCodeEmptyMatrix     = "EMPTY_MATRIX"     // 交互矩阵无行或无列，无法训练
)

// 模块名称常量
const (
	ModuleActivity  = "activity"  // 活动日志聚合模块
	ModuleMatrix    = "matrix"    // 索引/矩阵构建模块
	ModuleALS       = "als"       // 矩阵分解训练模块
	ModuleStore     = "store"     // 存储模块
	ModuleFeature   = "feature"   // 特征模块
	ModuleRecommend = "recommend" // 推荐服务模块
)

// 通用错误检查函数

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsMalformedRecord 检查错误是否为活动日志记录损坏（启动期致命错误）
func IsMalformedRecord(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeMalformedRecord
	}
	return false
}

// IsTrainingError 检查错误是否为训练失败（空矩阵等，启动期致命错误）
func IsTrainingError(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Module == ModuleALS
	}
	return false
}
