package rtc

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// GPIOConfig names the character device and line offsets wired to the chip.
type GPIOConfig struct {
	Chip string
	CLK  int
	DAT  int
	RST  int
}

// GPIODS1302 is a DS1302 driver holding its requested GPIO lines.
type GPIODS1302 struct {
	*DS1302
	lines []*gpiocdev.Line
}

// OpenDS1302 requests the three lines as outputs driven low and returns a
// ready driver. Close releases the lines.
func OpenDS1302(cfg GPIOConfig) (*GPIODS1302, error) {
	offsets := []struct {
		name   string
		offset int
	}{
		{"clk", cfg.CLK},
		{"dat", cfg.DAT},
		{"rst", cfg.RST},
	}

	lines := make([]*gpiocdev.Line, 0, len(offsets))
	closeAll := func() {
		for _, l := range lines {
			_ = l.Close()
		}
	}
	for _, o := range offsets {
		line, err := gpiocdev.RequestLine(cfg.Chip, o.offset,
			gpiocdev.AsOutput(0),
			gpiocdev.WithConsumer("suno-rtc-"+o.name),
		)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("request %s line %s:%d: %w", o.name, cfg.Chip, o.offset, err)
		}
		lines = append(lines, line)
	}

	return &GPIODS1302{
		DS1302: NewDS1302(linePin{lines[0]}, linePin{lines[1]}, linePin{lines[2]}),
		lines:  lines,
	}, nil
}

// Close releases the GPIO lines.
func (g *GPIODS1302) Close() error {
	var errs []error
	for _, l := range g.lines {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	g.lines = nil
	return errors.Join(errs...)
}

// linePin adapts a gpiocdev line to Pin and DataPin.
type linePin struct {
	line *gpiocdev.Line
}

func (p linePin) SetValue(v int) error {
	return p.line.SetValue(v)
}

func (p linePin) Value() (int, error) {
	return p.line.Value()
}

func (p linePin) Input() error {
	return p.line.Reconfigure(gpiocdev.AsInput)
}

func (p linePin) Output(v int) error {
	return p.line.Reconfigure(gpiocdev.AsOutput(v))
}
