package dto

import (
	"fmt"
	"net/http"
	"strings"

	res "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

// CreatedResponse 创建成功时返回 201
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.SuccessResponse(data))
}

// MessageResponse 返回带提示消息的成功响应
func MessageResponse(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, res.CustomResponse(
		res.WithData(data),
		res.WithMessage(message),
	))
}

// PagedResponse 返回带分页元信息的列表响应
func PagedResponse(c *gin.Context, data any, p *res.Pagination) {
	c.JSON(http.StatusOK, res.PagedResponse(data, p))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Status, res.ErrorResponse(err.Msg, err.Details))
}

// FieldError 字段级验证错误详情
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			jsonField := getJSONFieldName(fe)

			// 构造友好的错误消息
			var message string
			switch fe.Tag() {
			case "required":
				message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
			case "email":
				message = fmt.Sprintf("字段 '%s' 必须是合法的邮箱地址", jsonField)
			case "max":
				message = fmt.Sprintf("字段 '%s' 不能超过 %s", jsonField, fe.Param())
			case "min":
				message = fmt.Sprintf("字段 '%s' 不能少于 %s", jsonField, fe.Param())
			case "oneof":
				message = fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", jsonField, fe.Param())
			default:
				message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, fe.Tag())
			}

			details = append(details, FieldError{Field: jsonField, Message: message})
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithStatus(http.StatusBadRequest),
			res.WithErrorMessage("参数验证失败"),
			res.WithDetails(details),
		))
		return
	}

	// 如果不是 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithStatus(http.StatusBadRequest),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// getJSONFieldName 获取字段的JSON标签名称
func getJSONFieldName(fe validator.FieldError) string {
	field := fe.StructNamespace()

	if strings.Contains(field, ".") {
		parts := strings.Split(field, ".")
		if len(parts) > 1 {
			// 获取最后一个字段名（去掉结构体名称前缀）
			fieldName := parts[len(parts)-1]
			return toSnakeCase(fieldName)
		}
	}

	return toSnakeCase(fe.Field())
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
