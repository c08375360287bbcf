package console

import (
	"fmt"
	"io"

	"github.com/oshokin/proximity-alarm/internal/domain/proximity"
)

// Printer writes status lines to w. A nil *Printer discards everything.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{
		w: w,
	}
}

// Line writes a full diagnostic line.
func (p *Printer) Line(text string) {
	if p == nil {
		return
	}

	_, _ = fmt.Fprintln(p.w, text)
}

// Sample rewrites the status line with the latest reading.
func (p *Printer) Sample(d proximity.Distance, zone proximity.Zone) {
	if p == nil {
		return
	}

	_, _ = fmt.Fprint(p.w, "\r"+RenderSample(d, zone)+"    ")
}

// Entered writes the banner for a zone entry on its own line.
func (p *Printer) Entered(zone proximity.Zone) {
	if p == nil {
		return
	}

	_, _ = fmt.Fprint(p.w, "\n"+RenderBanner(zone)+"\n")
}

// RenderSample renders "Distance: 12.34 cm [WARNING]".
func RenderSample(d proximity.Distance, zone proximity.Zone) string {
	reading := "Distance: " + d.String()
	if !d.Valid() {
		reading = StyleInvalid.Render(reading)
	}

	return reading + " " + zoneStyle(zone).Render("["+zone.String()+"]")
}

// RenderBanner renders the zone entry banner, e.g. "-> CRITICAL - DANGER!".
func RenderBanner(zone proximity.Zone) string {
	text := "-> " + zone.String()
	if zone == proximity.Critical {
		text += " - DANGER!"
	}

	return zoneStyle(zone).Render(text)
}
