package core

import "czjira/internal/textutil"

// TypeChoice is one entry of the commit type menu.
type TypeChoice struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Choice is a rendered menu line and the value it selects.
type Choice struct {
	Name  string
	Value string
}

// BuildChoices renders every type as "key:" padded to the longest key plus
// one, a space and the description. Input order is kept.
func BuildChoices(types []TypeChoice) []Choice {
	width := 0
	for _, t := range types {
		if w := textutil.Width(t.Key); w > width {
			width = w
		}
	}
	width++

	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{
			Name:  textutil.PadRight(t.Key+":", width) + " " + t.Description,
			Value: t.Key,
		})
	}
	return choices
}
