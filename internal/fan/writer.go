package fan

import "fmt"

// The fan MCU takes the level as a single byte (0..100) in register 0.
const levelReg = 0

// LevelWriter pushes a fan level to the hardware.
type LevelWriter interface {
	SetLevel(v byte) error
}

// regDevice is the register access the fan needs from an I2C device.
type regDevice interface {
	WriteReg(reg, value byte) error
	ReadRegU8(reg byte) (byte, error)
}

// I2CWriter drives the fan over the hat's I2C device.
type I2CWriter struct {
	dev regDevice
}

func NewI2CWriter(dev regDevice) *I2CWriter {
	return &I2CWriter{dev: dev}
}

// Probe checks the fan MCU responds on the bus before any loop starts, so a
// miswired or absent hat fails fast instead of surfacing on the first
// decision interval.
func (w *I2CWriter) Probe() error {
	if _, err := w.dev.ReadRegU8(levelReg); err != nil {
		return fmt.Errorf("fan: probe device: %w", err)
	}
	return nil
}

func (w *I2CWriter) SetLevel(v byte) error {
	return w.dev.WriteReg(levelReg, v)
}
