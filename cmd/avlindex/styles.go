// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders CLI output. The zero value prints plain text.
type Styles struct {
	enabled bool
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
}

func NewStyles(color bool) Styles {
	return Styles{
		enabled: color,
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func (s Styles) render(style lipgloss.Style, v any) string {
	text := fmt.Sprint(v)
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s Styles) Label(v any) string { return s.render(s.label, v) }
func (s Styles) Value(v any) string { return s.render(s.value, v) }
func (s Styles) Muted(v any) string { return s.render(s.muted, v) }
func (s Styles) Error(v any) string { return s.render(s.err, v) }
