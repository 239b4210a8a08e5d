package metadata

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// id3Frame текстовый фрейм ID3v2.3
type id3Frame struct {
	id    string
	value string
}

// buildID3 собирает минимальный тег ID3v2.3 с текстовыми фреймами в кодировке ISO-8859-1
func buildID3(frames ...id3Frame) []byte {
	var body []byte
	for _, f := range frames {
		payload := append([]byte{0x00}, []byte(f.value)...)
		header := make([]byte, 10)
		copy(header, f.id)
		binary.BigEndian.PutUint32(header[4:8], uint32(len(payload)))
		body = append(body, header...)
		body = append(body, payload...)
	}

	size := len(body)
	tag := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F), byte(size >> 7 & 0x7F), byte(size & 0x7F)}
	return append(tag, body...)
}

// writeFile создает файл с указанным именем и содержимым во временной директории
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	return path
}
