package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "attribute", "tag" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalog = map[string]map[string]string{
	"en": {
		"required":          "required attribute {attribute} missing",
		"recommended":       "recommended attribute {attribute} missing",
		"fixed_value":       "attribute {attribute} must be {want}",
		"invalid_tag":       "invalid tag {tag}",
		"malformed_node":    "malformed node",
		"invalid_type":      "unsupported data type {type}",
		"mixed_types":       "mixed-type arrays unsupported",
		"empty_array":       "array must not be empty",
		"not_implemented":   "{what} not implemented",
		"invalid_namespace": "invalid namespace {prefix}",
	},
	"ja": {
		"required":          "必須属性 {attribute} が不足しています",
		"recommended":       "推奨属性 {attribute} が不足しています",
		"fixed_value":       "属性 {attribute} は {want} でなければなりません",
		"invalid_tag":       "不正なタグです: {tag}",
		"malformed_node":    "不正なノードです",
		"invalid_type":      "未対応のデータ型です: {type}",
		"mixed_types":       "型が混在した配列は未対応です",
		"empty_array":       "配列が空です",
		"not_implemented":   "{what} は未実装です",
		"invalid_namespace": "不正な名前空間です: {prefix}",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalog[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
