package metadata

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText превращает сырой вывод утилиты в строку.
// Вывод не в UTF-8 считается Windows-1252, как старые ID3v1 теги.
// Обрезаются только NUL-байты и пробелы в конце.
func decodeText(raw []byte) string {
	var s string
	if utf8.Valid(raw) {
		s = string(raw)
	} else if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
		s = string(decoded)
	} else {
		s = string(bytes.ToValidUTF8(raw, []byte("\uFFFD")))
	}

	return strings.TrimRight(strings.Trim(s, "\x00"), " \t\r\n")
}
