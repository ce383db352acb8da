package i18n

import (
	"strconv"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got" or "attr").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_enum":
			msg = "許可されていない値です"
		case "invalid_format":
			msg = "形式が不正です"
		case "parse_error":
			msg = "解析エラー"
		case "missing_namespace":
			msg = "名前空間がありません"
		case "namespace_mismatch":
			msg = "名前空間が一致しません"
		case "unknown_element":
			msg = "未対応の要素です"
		}
	default: // "en"
		switch code {
		case "invalid_enum":
			msg = "value not in allowed set"
		case "invalid_format":
			msg = "invalid format"
		case "parse_error":
			msg = "parse error"
		case "missing_namespace":
			msg = "element has no namespace"
		case "namespace_mismatch":
			msg = "namespace mismatch"
		case "unknown_element":
			msg = "unknown element"
		}
	}
	if msg == "" {
		return code
	}
	if got, ok := data["got"]; ok {
		msg += ": " + strconv.Quote(got)
	}
	return msg
}

type holder struct{ tr Translator }

var currentTranslator atomic.Pointer[holder]

func init() { currentTranslator.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().tr.Message(code, data)
}
