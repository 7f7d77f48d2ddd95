package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError one field validation failure // 单个字段的校验失败
type ValidError struct {
	Key     string
	Message string
}

// ValidErrors all validation failures of one request // 一次请求的全部校验失败
type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

// Errors returns the messages as a string slice
func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString joins all messages with commas
// ErrorsToString 将所有错误消息以逗号拼接
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// Maps returns key → message pairs
func (v ValidErrors) Maps() map[string]string {
	m := map[string]string{}
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// MapsToString renders key → message pairs for the response data
// MapsToString 将键值对渲染为响应数据
func (v ValidErrors) MapsToString() map[string]string {
	return v.Maps()
}

// BindAndValid binds request parameters and translates validation failures
// using the translator selected by the Lang middleware.
// BindAndValid 绑定请求参数，并用 Lang 中间件选定的翻译器翻译校验错误。
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		// Malformed body, wrong types and similar binding failures
		// 请求体格式错误、类型不匹配等绑定失败
		errs = append(errs, &ValidError{
			Key:     "body",
			Message: err.Error(),
		})
		return false, errs
	}

	trans, exist := c.Get("trans")
	translator, transOK := trans.(ut.Translator)
	if !exist || !transOK {
		for _, verr := range verrs {
			errs = append(errs, &ValidError{
				Key:     verr.Field(),
				Message: verr.Error(),
			})
		}
		return false, errs
	}

	for key, value := range verrs.Translate(translator) {
		errs = append(errs, &ValidError{
			Key:     key,
			Message: value,
		})
	}
	return false, errs
}
