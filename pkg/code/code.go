// Package code defines unified business codes carried by every API response
// Package code 定义所有 API 响应携带的统一业务码
package code

import (
	"fmt"
	"net/http"
)

// Code is a response code that also satisfies the error interface.
// Error codes carry the HTTP status they should be answered with.
// Code 是同时实现 error 接口的响应码，错误码携带其对应的 HTTP 状态码。
type Code struct {
	// 业务码
	code int
	// 成功与否
	status bool
	// HTTP 状态码
	statusCode int
	// 消息文本
	Lang lang
	// 数据
	data     interface{}
	haveData bool
	// 错误详细信息
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code with its HTTP status
// NewError 注册一个失败码及其 HTTP 状态码
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("code %d already exists, pick another one", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: false, statusCode: statusCode, Lang: l}
}

// NewSuss registers a success code
// NewSuss 注册一个成功码
func NewSuss(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("code %d already exists, pick another one", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: true, statusCode: statusCode, Lang: l}
}

// Clone creates a copy so With* never mutates the registered value
// Clone 创建副本，With* 不会修改注册的原对象
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		status:     e.status,
		statusCode: e.statusCode,
		Lang:       e.Lang,
	}
}

// Error implements the error interface
func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

// StatusCode returns the HTTP status this code answers with
// StatusCode 返回该码对应的 HTTP 状态码
func (e *Code) StatusCode() int {
	if e.statusCode == 0 {
		return http.StatusOK
	}
	return e.statusCode
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData returns a copy carrying payload data
// WithData 返回携带数据的副本
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails returns a copy carrying detail strings
// WithDetails 返回携带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// Is reports whether err is (a derived copy of) this code
// Is 判断 err 是否为该码（或其派生副本）
func (e *Code) Is(err error) bool {
	other, ok := err.(*Code)
	if !ok || other == nil {
		return false
	}
	return other.code == e.code
}
