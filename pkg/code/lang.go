package code

// lang holds the English and Chinese text for a code message
// lang 类型，用来存储英文和中文文本
type lang struct {
	en   string // English // 英文
	zhCN string // Chinese // 中文
}

// Default language is English // 默认语言为英文
var lng = "en"

const fallbackLng = "en"

// supportedLanguages lists the languages the lang type carries
// supportedLanguages 列出 lang 类型支持的语言
var supportedLanguages = []string{"en", "zh_cn"}

// GetMessage returns the message for the current global language
// GetMessage 根据全局语言返回相应的消息
func (l lang) GetMessage() string {
	msg := l.forLang(lng)
	if msg == "" {
		msg = l.forLang(fallbackLng)
	}
	return msg
}

func (l lang) forLang(language string) string {
	switch language {
	case "zh_cn":
		return l.zhCN
	default:
		return l.en
	}
}

// GetSupportedLanguages returns all languages supported by the lang type
// GetSupportedLanguages 返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// SetGlobalDefaultLang sets the global default language
// SetGlobalDefaultLang 设置全局默认语言
func SetGlobalDefaultLang(language string) bool {
	for _, supported := range supportedLanguages {
		if language == supported {
			lng = language
			return true
		}
	}
	return false
}
