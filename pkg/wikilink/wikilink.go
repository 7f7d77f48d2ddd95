// Package wikilink resolves [[Name]] tokens inside free text against a
// candidate entity list, producing a renderable segment sequence.
// Package wikilink 将自由文本中的 [[Name]] 标记解析为可渲染的片段序列
package wikilink

import (
	"regexp"
	"strings"
)

// Segment kinds // 片段类型
const (
	KindText       = "text"       // Plain pass-through text // 普通透传文本
	KindLink       = "link"       // Resolved reference to an entity // 已解析的条目引用
	KindUnresolved = "unresolved" // Broken reference, no matching entity // 未解析的引用
)

// Candidate is an entity eligible as a link target
// Candidate 表示可作为链接目标的条目
type Candidate struct {
	ID   int64
	Name string
}

// Segment is one piece of the resolved output. Concatenating the Text of all
// segments in order reproduces the display text of the input.
// Segment 是解析输出的一个片段，按序拼接所有片段的 Text 即还原输入的显示文本
type Segment struct {
	Kind string `json:"kind"`
	// Text is the display text: the raw text for KindText, the name as typed
	// inside the brackets for KindLink and KindUnresolved
	Text string `json:"text"`
	// EntityID is set only for KindLink
	EntityID int64 `json:"entityId,omitempty"`
}

// tokenRegex matches [[...]] tokens non-greedily; (?s) lets tokens span newlines.
// Lone brackets are not token boundaries.
// tokenRegex 非贪婪匹配 [[...]] 标记，(?s) 允许跨行；孤立括号不构成标记
var tokenRegex = regexp.MustCompile(`(?s)\[\[(.*?)\]\]`)

// Resolve scans text for [[Name]] tokens and maps each to a link segment when
// exactly one candidate matches the name case-insensitively, or an unresolved
// segment otherwise. When several candidates share a name the first one in
// list order wins. Resolve is pure: it keeps no state and must be re-run on
// raw source text for every render.
// Resolve 扫描文本中的 [[Name]] 标记，大小写不敏感地匹配候选条目；
// 重名时取列表中的第一个；纯函数，无状态，每次渲染需基于原始文本重新执行。
func Resolve(text string, candidates []Candidate) []Segment {
	matches := tokenRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: KindText, Text: text}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: KindText, Text: text[last:m[0]]})
		}

		// The display text keeps the author's capitalization, not the
		// canonical entity name.
		// 显示文本保留作者输入的大小写，而非条目的规范名称
		typed := text[m[2]:m[3]]
		if target, ok := match(typed, candidates); ok {
			segments = append(segments, Segment{Kind: KindLink, Text: typed, EntityID: target.ID})
		} else {
			segments = append(segments, Segment{Kind: KindUnresolved, Text: typed})
		}
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Kind: KindText, Text: text[last:]})
	}
	return segments
}

// match performs a case-insensitive exact name match, first candidate wins.
// An empty typed name never matches: entity names are required to be non-empty.
// match 执行大小写不敏感的精确名称匹配，取第一个候选；空名称永不匹配
func match(typed string, candidates []Candidate) (Candidate, bool) {
	if typed == "" {
		return Candidate{}, false
	}
	for _, c := range candidates {
		if strings.EqualFold(c.Name, typed) {
			return c, true
		}
	}
	return Candidate{}, false
}
