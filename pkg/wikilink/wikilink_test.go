// Package wikilink resolves [[Name]] tokens inside free text
package wikilink

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	entities := []Candidate{
		{ID: 1, Name: "Gandalf"},
		{ID: 2, Name: "The Shire"},
		{ID: 3, Name: "Narsil"},
	}

	tests := []struct {
		name       string
		text       string
		candidates []Candidate
		expected   []Segment
	}{
		{
			name:       "no tokens passes through as single segment",
			text:       "A quiet morning in Hobbiton.",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "A quiet morning in Hobbiton."},
			},
		},
		{
			name:       "empty text passes through",
			text:       "",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: ""},
			},
		},
		{
			name:       "resolved link carries entity id",
			text:       "Ask [[Gandalf]] about it",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "Ask "},
				{Kind: KindLink, Text: "Gandalf", EntityID: 1},
				{Kind: KindText, Text: " about it"},
			},
		},
		{
			name:       "case-insensitive match keeps typed display text",
			text:       "He left [[the shire]] at dawn",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "He left "},
				{Kind: KindLink, Text: "the shire", EntityID: 2},
				{Kind: KindText, Text: " at dawn"},
			},
		},
		{
			name:       "unknown name yields unresolved marker with literal text",
			text:       "See [[Unknown]]",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "See "},
				{Kind: KindUnresolved, Text: "Unknown"},
			},
		},
		{
			name:       "empty bracket pair is unresolved",
			text:       "broken [[]] token",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "broken "},
				{Kind: KindUnresolved, Text: ""},
				{Kind: KindText, Text: " token"},
			},
		},
		{
			name:       "token spanning newlines still matches",
			text:       "about [[The\nShire]] here",
			candidates: []Candidate{{ID: 2, Name: "The\nShire"}},
			expected: []Segment{
				{Kind: KindText, Text: "about "},
				{Kind: KindLink, Text: "The\nShire", EntityID: 2},
				{Kind: KindText, Text: " here"},
			},
		},
		{
			name:       "lone brackets are not token boundaries",
			text:       "array[0] and ]] stray [ bits",
			candidates: entities,
			expected: []Segment{
				{Kind: KindText, Text: "array[0] and ]] stray [ bits"},
			},
		},
		{
			name:       "adjacent tokens produce no empty interstitial segments",
			text:       "[[Gandalf]][[Narsil]]",
			candidates: entities,
			expected: []Segment{
				{Kind: KindLink, Text: "Gandalf", EntityID: 1},
				{Kind: KindLink, Text: "Narsil", EntityID: 3},
			},
		},
		{
			name: "duplicate names resolve to first candidate in list order",
			text: "[[Gandalf]]",
			candidates: []Candidate{
				{ID: 7, Name: "Gandalf"},
				{ID: 8, Name: "gandalf"},
			},
			expected: []Segment{
				{Kind: KindLink, Text: "Gandalf", EntityID: 7},
			},
		},
		{
			name:       "no candidates means every token is unresolved",
			text:       "meet [[Gandalf]]",
			candidates: nil,
			expected: []Segment{
				{Kind: KindText, Text: "meet "},
				{Kind: KindUnresolved, Text: "Gandalf"},
			},
		},
		{
			name:       "non-greedy capture stops at first closing pair",
			text:       "[[Gandalf]] rode to [[The Shire]]",
			candidates: entities,
			expected: []Segment{
				{Kind: KindLink, Text: "Gandalf", EntityID: 1},
				{Kind: KindText, Text: " rode to "},
				{Kind: KindLink, Text: "The Shire", EntityID: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.text, tt.candidates)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

// Reassembling segment texts in order must reproduce the input's display text
// for token-free input.
func TestResolveReassembly(t *testing.T) {
	text := "plain text, no links at all"
	segments := Resolve(text, []Candidate{{ID: 1, Name: "X"}})

	var rebuilt string
	for _, s := range segments {
		rebuilt += s.Text
	}
	if rebuilt != text {
		t.Errorf("reassembled %q, want %q", rebuilt, text)
	}
}

// Resolving already-resolved display text must not double-wrap: the resolver
// output carries no brackets, so a second pass yields pure text segments.
func TestResolveIdempotentOverDisplayText(t *testing.T) {
	entities := []Candidate{{ID: 1, Name: "Gandalf"}}
	first := Resolve("Ask [[Gandalf]] now", entities)

	var display string
	for _, s := range first {
		display += s.Text
	}

	second := Resolve(display, entities)
	if len(second) != 1 || second[0].Kind != KindText {
		t.Errorf("second pass over display text = %+v, want single text segment", second)
	}
}
