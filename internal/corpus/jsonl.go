package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// BuildFromStream reads one JSON object per line from path and feeds each
// valid record through AddDocument. A line shorter than 50 bytes, or
// missing doc_id or text, is silently skipped so a single malformed line
// from a noisy crawler feed never aborts the build. Open/read errors on
// path itself are fatal.
func (b *Builder) BuildFromStream(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening document stream %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 50 {
			continue
		}

		docIDStr := extractJSONField(line, "doc_id")
		if docIDStr == "" {
			continue
		}
		docID, err := strconv.Atoi(docIDStr)
		if err != nil || docID < 0 {
			continue
		}

		text := extractJSONField(line, "text")
		if len(text) < 50 {
			continue
		}

		url := extractJSONField(line, "url")
		title := extractJSONField(line, "title")

		b.AddDocument(docID, url, title, text)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("reading document stream %s: %w", path, err)
	}
	return nil
}

// extractJSONField pulls the value of a single top-level field out of a
// JSON object line without a full JSON parser. It recognizes the
// \n \t \r \" \\ escapes and falls back to a bare numeric/literal read
// for non-string values (doc_id).
func extractJSONField(line, field string) string {
	needle := `"` + field + `":`
	pos := strings.Index(line, needle)
	if pos < 0 {
		return ""
	}
	i := pos + len(needle)
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return ""
	}

	if line[i] != '"' {
		end := strings.IndexAny(line[i:], ",}")
		if end < 0 {
			return strings.TrimSpace(line[i:])
		}
		return strings.TrimSpace(line[i : i+end])
	}

	i++
	var sb strings.Builder
	for i < len(line) {
		c := line[i]
		if c == '\\' && i+1 < len(line) {
			i++
			switch line[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(line[i])
			}
			i++
			continue
		}
		if c == '"' {
			break
		}
		sb.WriteByte(c)
		i++
	}
	return sb.String()
}
