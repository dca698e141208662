package tui

import "github.com/lighty7/taro/internal/app"

// InterpretationMsg delivers the synthesized text for reading number Reading.
// Results for an earlier reading are dropped.
type InterpretationMsg struct {
	Reading        int
	Interpretation app.Interpretation
	Err            error
}
