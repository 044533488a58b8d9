package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX walks word/document.xml: paragraph text first, then any
// tables appended as an "Extracted Tables" section with pipe-joined
// cells, so downstream analysis sees tabular data in reading order.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", errors.New("word/document.xml not found")
	}
	defer docXML.Close()

	paragraphs, tables, err := parseDocumentXML(docXML)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n")
	}

	if len(tables) > 0 {
		b.WriteString("\n\n--- Extracted Tables ---\n")
		for _, table := range tables {
			for _, row := range table {
				b.WriteString(strings.Join(row, " | "))
				b.WriteString("\n")
			}
			b.WriteString("------------------------\n")
		}
	}

	return b.String(), nil
}

// parseDocumentXML streams WordprocessingML tokens, collecting
// paragraphs outside tables and cell text inside them.
func parseDocumentXML(r io.Reader) (paragraphs []string, tables [][][]string, err error) {
	dec := xml.NewDecoder(r)

	var (
		tableDepth int
		inText     bool
		para       strings.Builder
		cell       strings.Builder
		row        []string
		table      [][]string
	)

	for {
		tok, tokErr := dec.Token()
		if tokErr == io.EOF {
			break
		}
		if tokErr != nil {
			return nil, nil, fmt.Errorf("parse document.xml: %w", tokErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					table = nil
				}
			case "tr":
				if tableDepth > 0 {
					row = nil
				}
			case "tc":
				if tableDepth > 0 {
					cell.Reset()
				}
			case "p":
				if tableDepth == 0 {
					para.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 {
					paragraphs = append(paragraphs, para.String())
				}
			case "tc":
				if tableDepth > 0 {
					row = append(row, strings.TrimSpace(cell.String()))
				}
			case "tr":
				if tableDepth > 0 && row != nil {
					table = append(table, row)
				}
			case "tbl":
				tableDepth--
				if tableDepth == 0 && len(table) > 0 {
					tables = append(tables, table)
				}
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth > 0 {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		}
	}

	return paragraphs, tables, nil
}
