package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// jsonlItem is one line of a JSONL corpus.
type jsonlItem struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Text   string `json:"text"`
}

// parseJSONL reads one document per line. Malformed and empty lines are
// returned as warnings rather than failing the file.
func parseJSONL(name string, data []byte) ([]Doc, []string) {
	var (
		docs     []Doc
		warnings []string
	)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var item jsonlItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping malformed JSON at line %d in %s: %v", line, name, err))
			continue
		}
		text, _ := decodeText([]byte(item.Text))
		if strings.TrimSpace(text) == "" {
			warnings = append(warnings, fmt.Sprintf("skipping empty text at line %d in %s", line, name))
			continue
		}
		docs = append(docs, Doc{Source: itemSource(name, line, item), Text: text})
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("reading %s: %v", name, err))
	}
	return docs, warnings
}

func itemSource(name string, line int, item jsonlItem) string {
	switch {
	case item.Source != "":
		return item.Source
	case item.URL != "":
		return item.URL
	case item.Title != "":
		return fmt.Sprintf("%s#%s", name, item.Title)
	}
	return fmt.Sprintf("%s#%d", name, line)
}
