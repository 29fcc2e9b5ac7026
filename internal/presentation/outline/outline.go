// Package outline renders a document as markdown: the layer trees as a
// nested list, the timeline as one table per animation. The CLI pipes the
// result through glamour for terminal display.
package outline

import (
	"fmt"
	"strings"

	"github.com/oxblood/morph/pkg/domain"
)

// Render produces a markdown outline of the whole document.
func Render(doc *domain.Document) string {
	var b strings.Builder
	b.WriteString("# Workspace\n\n")
	writeLayers(&b, doc)
	writeTimeline(&b, doc)
	return b.String()
}

func writeLayers(b *strings.Builder, doc *domain.Document) {
	b.WriteString("## Layers\n\n")
	for _, root := range doc.Layers.VectorLayers {
		writeLayer(b, doc, root, 0)
	}
	b.WriteString("\n")
}

func writeLayer(b *strings.Builder, doc *domain.Document, l domain.Layer, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s- **%s** `%s`%s\n", indent, l.Name(), l.ID(), layerMarkers(doc, l))
	if doc.Layers.CollapsedLayerIDs.Has(l.ID()) {
		return
	}
	for _, child := range l.Children() {
		writeLayer(b, doc, child, depth+1)
	}
}

func layerMarkers(doc *domain.Document, l domain.Layer) string {
	var marks []string
	if l.ID() == doc.Layers.ActiveVectorLayerID {
		marks = append(marks, "active")
	}
	if doc.Layers.SelectedLayerIDs.Has(l.ID()) {
		marks = append(marks, "selected")
	}
	if doc.Layers.CollapsedLayerIDs.Has(l.ID()) {
		marks = append(marks, "collapsed")
	}
	if doc.Layers.HiddenLayerIDs.Has(l.ID()) {
		marks = append(marks, "hidden")
	}
	if len(marks) == 0 {
		return ""
	}
	return " _(" + strings.Join(marks, ", ") + ")_"
}

func writeTimeline(b *strings.Builder, doc *domain.Document) {
	b.WriteString("## Timeline\n\n")
	for _, a := range doc.Timeline.Animations {
		marker := ""
		if a.ID == doc.Timeline.ActiveAnimationID {
			marker = " _(active)_"
		}
		fmt.Fprintf(b, "### %s `%s`%s (%d units)\n\n", a.Name, a.ID, marker, a.Duration)
		if len(a.Blocks) == 0 {
			b.WriteString("_no blocks_\n\n")
			continue
		}
		b.WriteString("| Block | Layer | Property | Span | Kind |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, blk := range a.Blocks {
			base := blk.Base()
			selected := ""
			if doc.Timeline.SelectedBlockIDs.Has(base.ID) {
				selected = " *"
			}
			fmt.Fprintf(b, "| `%s`%s | `%s` | %s | [%d,%d) | %s |\n",
				base.ID, selected, base.LayerID, base.PropertyName,
				base.StartTime, base.EndTime, blockKind(blk))
		}
		b.WriteString("\n")
	}
}

func blockKind(b domain.Block) string {
	switch blk := b.(type) {
	case *domain.NumberBlock:
		return "number"
	case *domain.ColorBlock:
		return "color"
	case *domain.PathBlock:
		return fmt.Sprintf("path %v→%v", blk.From.CommandCounts(), blk.To.CommandCounts())
	}
	return "unknown"
}
