package rtc

import (
	"fmt"
	"sync"
)

// DS1302 register command bytes. Reads use the write address with bit 0 set.
const (
	regSeconds      byte = 0x80
	regMinutes      byte = 0x82
	regHours        byte = 0x84
	regDate         byte = 0x86
	regMonth        byte = 0x88
	regYear         byte = 0x8C
	regWriteProtect byte = 0x8E

	readBit byte = 0x01

	writeProtectOn  byte = 0x80
	writeProtectOff byte = 0x00

	yearBase = 2000
)

// Pin is one digital line wired to the chip.
type Pin interface {
	SetValue(int) error
	Value() (int, error)
}

// DataPin is the bidirectional I/O line.
type DataPin interface {
	Pin
	Input() error
	Output(int) error
}

// DS1302 drives a DS1302 clock over a three-wire bit-banged interface.
// Bytes are shifted LSB first: the host drives data on rising clock edges
// and the chip drives data after falling edges.
type DS1302 struct {
	mu  sync.Mutex
	clk Pin
	dat DataPin
	rst Pin
}

// NewDS1302 wires a driver to its clock, data, and chip-enable pins.
func NewDS1302(clk Pin, dat DataPin, rst Pin) *DS1302 {
	return &DS1302{clk: clk, dat: dat, rst: rst}
}

// Now reads the calendar registers.
func (d *DS1302) Now() (Reading, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := []byte{regSeconds, regMinutes, regHours, regDate, regMonth, regYear}
	values := make([]byte, len(regs))
	for i, reg := range regs {
		v, err := d.readRegister(reg)
		if err != nil {
			return Reading{}, err
		}
		values[i] = v
	}

	reading := Reading{
		Second: bcdToDec(values[0] & 0x7F), // bit 7 is clock-halt
		Minute: bcdToDec(values[1] & 0x7F),
		Hour:   bcdToDec(values[2] & 0x3F), // 24h mode
		Day:    bcdToDec(values[3] & 0x3F),
		Month:  bcdToDec(values[4] & 0x1F),
		Year:   yearBase + bcdToDec(values[5]),
	}
	if err := reading.Validate(); err != nil {
		return Reading{}, err
	}
	return reading, nil
}

// Set writes the calendar registers and restores write protection.
func (d *DS1302) Set(r Reading) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Year < yearBase || r.Year > yearBase+99 {
		return fmt.Errorf("%w: year %d outside %d-%d", ErrInvalidReading, r.Year, yearBase, yearBase+99)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeRegister(regWriteProtect, writeProtectOff); err != nil {
		return err
	}

	writes := []struct {
		reg   byte
		value int
	}{
		{regSeconds, r.Second}, // clock-halt cleared
		{regMinutes, r.Minute},
		{regHours, r.Hour},
		{regDate, r.Day},
		{regMonth, r.Month},
		{regYear, r.Year - yearBase},
	}
	for _, w := range writes {
		if err := d.writeRegister(w.reg, decToBCD(w.value)); err != nil {
			return err
		}
	}

	return d.writeRegister(regWriteProtect, writeProtectOn)
}

func (d *DS1302) readRegister(reg byte) (value byte, err error) {
	if err := d.begin(); err != nil {
		return 0, err
	}
	defer func() {
		if endErr := d.end(); err == nil && endErr != nil {
			err = endErr
		}
	}()

	if err := d.writeByte(reg | readBit); err != nil {
		return 0, fmt.Errorf("rtc command 0x%02X: %w", reg|readBit, err)
	}
	value, err = d.readByte()
	if err != nil {
		return 0, fmt.Errorf("rtc read 0x%02X: %w", reg|readBit, err)
	}
	return value, nil
}

func (d *DS1302) writeRegister(reg byte, value byte) (err error) {
	if err := d.begin(); err != nil {
		return err
	}
	defer func() {
		if endErr := d.end(); err == nil && endErr != nil {
			err = endErr
		}
	}()

	if err := d.writeByte(reg); err != nil {
		return fmt.Errorf("rtc command 0x%02X: %w", reg, err)
	}
	if err := d.writeByte(value); err != nil {
		return fmt.Errorf("rtc write 0x%02X: %w", reg, err)
	}
	return nil
}

func (d *DS1302) begin() error {
	if err := d.clk.SetValue(0); err != nil {
		return fmt.Errorf("rtc clock line: %w", err)
	}
	if err := d.rst.SetValue(1); err != nil {
		return fmt.Errorf("rtc enable line: %w", err)
	}
	return nil
}

func (d *DS1302) end() error {
	if err := d.rst.SetValue(0); err != nil {
		return fmt.Errorf("rtc enable line: %w", err)
	}
	return nil
}

func (d *DS1302) writeByte(b byte) error {
	if err := d.dat.Output(0); err != nil {
		return err
	}
	for i := 0; i < 8; i++ {
		if err := d.dat.SetValue(int(b>>i) & 1); err != nil {
			return err
		}
		if err := d.pulse(); err != nil {
			return err
		}
	}
	return nil
}

func (d *DS1302) readByte() (byte, error) {
	if err := d.dat.Input(); err != nil {
		return 0, err
	}
	var b byte
	for i := 0; i < 8; i++ {
		bit, err := d.dat.Value()
		if err != nil {
			return 0, err
		}
		b |= byte(bit&1) << i
		if err := d.pulse(); err != nil {
			return 0, err
		}
	}
	if err := d.dat.Output(0); err != nil {
		return 0, err
	}
	return b, nil
}

func (d *DS1302) pulse() error {
	if err := d.clk.SetValue(1); err != nil {
		return err
	}
	return d.clk.SetValue(0)
}

func bcdToDec(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

func decToBCD(v int) byte {
	return byte(v/10)<<4 | byte(v%10)
}
