package util

import "strings"

// QRCodeToUTF8 draws a QR bitmap with full-block characters, two per module.
func QRCodeToUTF8(bitmap [][]bool, inverse bool) string {
	var sb strings.Builder
	full := "██"
	empty := "  "
	if inverse {
		full, empty = empty, full
	}
	for _, row := range bitmap {
		for _, dot := range row {
			if dot {
				sb.WriteString(full)
			} else {
				sb.WriteString(empty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
