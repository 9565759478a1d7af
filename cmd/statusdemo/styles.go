/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00BFFF"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

const (
	iconCheck = "✓"
	iconArrow = "→"
)

func title(s string) string { return titleStyle.Render(s) }

func okLine(s string) string { return okStyle.Render(iconCheck + " " + s) }

func keyText(s string) string { return keyStyle.Render(s) }

func dim(s string) string { return dimStyle.Render(s) }
