package statement

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/ledongthuc/pdf"
)

// Extractor turns raw PDF bytes into a positioned Document. The production
// implementation wraps ledongthuc/pdf; tests substitute DocumentFromText.
type Extractor interface {
	Extract(content []byte, password string) (*Document, error)
}

// NewPDFExtractor returns the default PDF-backed extractor.
func NewPDFExtractor() Extractor {
	return &pdfExtractor{}
}

type pdfExtractor struct{}

// Words on the same visual row can report slightly different Y values, so
// rows are bucketed to the nearest 5 points before grouping.
const rowBucket = 5.0

func (e *pdfExtractor) Extract(content []byte, password string) (*Document, error) {
	ra := bytes.NewReader(content)
	reader, err := pdf.NewReaderEncrypted(ra, int64(len(content)), func() string {
		return password
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	doc := &Document{}
	totalPages := reader.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		texts := page.Content().Text
		if len(texts) == 0 {
			continue
		}

		rows := make(map[float64][]Word)
		for _, t := range texts {
			if t.S == "" {
				continue
			}
			y := math.Round(t.Y/rowBucket) * rowBucket
			rows[y] = append(rows[y], Word{X: t.X, Text: t.S})
		}

		ys := make([]float64, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		// PDF Y grows upward, so higher Y comes first.
		sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

		p := Page{}
		for _, y := range ys {
			words := rows[y]
			sort.Slice(words, func(a, b int) bool { return words[a].X < words[b].X })
			p.Lines = append(p.Lines, Line{Words: mergeAdjacent(words)})
		}
		doc.Pages = append(doc.Pages, p)
	}

	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("no extractable text in PDF")
	}
	return doc, nil
}

// mergeAdjacent joins fragments the PDF renderer split mid-word. Fragments
// closer than one point are treated as a single word.
func mergeAdjacent(words []Word) []Word {
	if len(words) == 0 {
		return words
	}
	merged := []Word{words[0]}
	for _, w := range words[1:] {
		last := &merged[len(merged)-1]
		lastEnd := last.X + float64(len(last.Text))
		if w.X-lastEnd < 1.0 {
			last.Text += w.Text
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
