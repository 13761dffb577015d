//go:build windows

package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"

	"github.com/example/protondrive/internal/logging"
)

// platformNormalizeIcon wraps PNG data in a single-image ICO container, which
// is the only format the Windows tray accepts.
func platformNormalizeIcon(data []byte) []byte {
	if isICO(data) {
		return data
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		logging.Debugf("tray icon is not a png: %v", err)
		return nil
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		logging.Debugf("tray icon image has invalid bounds: %dx%d", cfg.Width, cfg.Height)
		return nil
	}

	icoData, err := wrapPNGAsICO(data, cfg.Width, cfg.Height)
	if err != nil {
		logging.Debugf("tray icon ico wrapping failed: %v", err)
		return nil
	}
	return icoData
}

func wrapPNGAsICO(pngData []byte, width, height int) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, uint16(0)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}

	writeDimension := func(value int) error {
		size := byte(value)
		if value <= 0 || value >= 256 {
			size = 0
		}
		return buf.WriteByte(size)
	}

	if err := writeDimension(width); err != nil {
		return nil, err
	}
	if err := writeDimension(height); err != nil {
		return nil, err
	}

	if err := buf.WriteByte(0); err != nil {
		return nil, err
	}
	if err := buf.WriteByte(0); err != nil {
		return nil, err
	}

	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(32)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(pngData))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(6+16)); err != nil {
		return nil, err
	}

	if _, err := buf.Write(pngData); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func isICO(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x01 && data[3] == 0x00
}
