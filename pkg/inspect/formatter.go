package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type, kind, unit and range information.
	ShowMetadata bool

	// ShowDescription appends the VSS description of data points.
	ShowDescription bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue renders a value with its unit. Strings are quoted; unset
// values print as "(unset)".
func (f *Formatter) FormatValue(value any, unit string) string {
	if value == nil {
		return "(unset)"
	}
	var s string
	if str, ok := value.(string); ok {
		s = strconv.Quote(str)
	} else {
		s = model.FormatValue(value)
	}
	if unit == "" {
		return s
	}
	if unit == "percent" {
		return s + " %"
	}
	return s + " " + unit
}

// FormatMetadata renders data point metadata, e.g.
// "uint16 actuator, mm, [0, 1000]".
func FormatMetadata(meta model.Metadata) string {
	parts := []string{meta.Type.String() + " " + meta.Kind.String()}
	if meta.Unit != "" {
		parts = append(parts, meta.Unit)
	}
	if meta.HasRange() {
		parts = append(parts, "["+formatBound(meta.Min)+", "+formatBound(meta.Max)+"]")
	}
	if len(meta.Allowed) > 0 {
		parts = append(parts, "{"+strings.Join(meta.Allowed, "|")+"}")
	}
	return strings.Join(parts, ", ")
}

func formatBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatNode renders one line for a node: "Name = value (metadata)" for
// data points and "Name/ (n children)" for branches.
func (f *Formatter) FormatNode(info NodeInfo) string {
	if !info.Kind.IsLeaf() {
		return fmt.Sprintf("%s/ (%d children)", info.Name, info.Children)
	}

	var sb strings.Builder
	sb.WriteString(info.Name)
	sb.WriteString(" = ")
	if info.HasValue {
		sb.WriteString(f.FormatValue(info.Value, info.Meta.Unit))
	} else {
		sb.WriteString(f.FormatValue(nil, ""))
	}
	if f.ShowMetadata {
		sb.WriteString(" (")
		sb.WriteString(FormatMetadata(info.Meta))
		sb.WriteString(")")
	}
	if f.ShowDescription && info.Meta.Description != "" {
		sb.WriteString(" - ")
		sb.WriteString(info.Meta.Description)
	}
	return sb.String()
}

// FormatList renders nodes one per line.
func (f *Formatter) FormatList(nodes []NodeInfo) string {
	if len(nodes) == 0 {
		return "  (no children)\n"
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(f.Indent(1, f.FormatNode(n)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTree renders a subtree with one indent level per depth.
func (f *Formatter) FormatTree(t *TreeNode) string {
	var sb strings.Builder
	f.writeTree(&sb, t, 0)
	return sb.String()
}

func (f *Formatter) writeTree(sb *strings.Builder, t *TreeNode, depth int) {
	line := f.FormatNode(t.NodeInfo)
	if t.Truncated {
		line += " ..."
	}
	sb.WriteString(f.Indent(depth, line))
	sb.WriteString("\n")
	for _, c := range t.Children {
		f.writeTree(sb, c, depth+1)
	}
}
