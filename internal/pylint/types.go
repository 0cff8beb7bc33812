package pylint

// Diagnostic is one finding from pylint's JSON output format. Line is
// 1-based, Column is 0-based. Module and Obj are optional context labels;
// Obj names the enclosing function or class when pylint knows it.
type Diagnostic struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
	Symbol    string `json:"symbol"`
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Module    string `json:"module,omitempty"`
	Obj       string `json:"obj,omitempty"`
}

// Context returns the label used when pointing a reader back at the source:
// the enclosing object when pylint reported one, otherwise the module name.
func (d Diagnostic) Context() string {
	if d.Obj != "" {
		return d.Obj
	}
	return d.Module
}
