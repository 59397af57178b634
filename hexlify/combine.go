package hexlify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UICRAddressRecord is the Extended Linear Address record that opens the
// UICR region (0x10000000) of an nRF51 firmware image. Script records are
// spliced in before it so they stay within the flash address space.
const UICRAddressRecord = ":020000041000EA"

// trailerLines is the number of closing records (start address and end of
// file) kept after the script when the firmware has no UICR region.
const trailerLines = 2

// Combine encodes payload and splices the records into a firmware image,
// writing the combined Intel HEX text to w.
//
// Example:
//
//	fw, _ := os.Open("firmware.hex")
//	defer fw.Close()
//	err := hexlify.New().Combine(os.Stdout, fw, payload)
func (e *Encoder) Combine(w io.Writer, firmware io.Reader, payload []byte) error {
	scriptHex, err := e.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode script: %w", err)
	}

	at, err := splice(w, firmware, scriptHex)
	if err != nil {
		e.logError("combine failed", "error", err)
		return err
	}

	e.logInfo("combined firmware and script",
		"insert_line", at+1,
		"payload_bytes", len(payload),
	)
	return nil
}

// Splice inserts already encoded script records into a firmware image.
// The records go before the UICR address record when the firmware has one,
// and before the last two lines otherwise. Firmware lines are copied
// verbatim; the script block is terminated by a single newline.
//
// Firmware records are not decoded: this is a line-level operation.
func Splice(w io.Writer, firmware io.Reader, scriptHex string) error {
	_, err := splice(w, firmware, scriptHex)
	return err
}

func splice(w io.Writer, firmware io.Reader, scriptHex string) (int, error) {
	lines, err := readLines(firmware)
	if err != nil {
		return 0, fmt.Errorf("read firmware: %w", err)
	}

	if len(lines) < trailerLines {
		return 0, ErrFirmwareTooShort
	}

	at := len(lines) - trailerLines
	for i, line := range lines {
		if strings.Contains(line, UICRAddressRecord) {
			at = i
			break
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines[:at] {
		if _, err := bw.WriteString(line); err != nil {
			return 0, fmt.Errorf("write firmware: %w", err)
		}
	}
	if _, err := bw.WriteString(scriptHex + "\n"); err != nil {
		return 0, fmt.Errorf("write script: %w", err)
	}
	for _, line := range lines[at:] {
		if _, err := bw.WriteString(line); err != nil {
			return 0, fmt.Errorf("write firmware: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("write combined firmware: %w", err)
	}

	return at, nil
}

// readLines reads r into lines, keeping each line terminator.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
