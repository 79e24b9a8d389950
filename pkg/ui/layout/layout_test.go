package layout

import (
	"strings"

	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

func frame(lines ...string) string {
	return strings.Join(lines, "\n")
}

func renderRoot(v runtime.View, w, h int) *runtime.Buffer {
	buf := runtime.NewBuffer(runtime.Dims(w, h))
	runtime.RenderRoot(v, buf)
	return buf
}

// probe is a fixed-size view that records the rects it is rendered at.
type probe struct {
	constraints runtime.Constraints
	rendered    []runtime.Rect
}

func newProbe(w, h runtime.Sizing) *probe {
	return &probe{constraints: runtime.NewConstraints(w, h)}
}

func (p *probe) Sizing(runtime.Dimensions) runtime.Constraints { return p.constraints }

func (p *probe) Render(within runtime.Rect, buf *runtime.Buffer) {
	p.rendered = append(p.rendered, within)
	buf.Fill(within, runtime.NewFillStyle('#', style.New()))
}
