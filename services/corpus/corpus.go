package corpus

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/logger"
)

// Corpus lines look like "12: Categoría | Text of the document...".
var docLineRegex = regexp.MustCompile(`^\s*(\d+)\s*:\s*([^|]+?)\s*\|\s*(.*)$`)

const maxLineSize = 1024 * 1024

// Load reads a corpus file and returns its documents with docIDs remapped to
// 0..N-1 in original-ID order. The remapping keeps the NOT universe dense and
// lets documents be addressed by position. Lines that do not match the corpus
// format are skipped.
func Load(logger logger.Logger, path string) ([]indexdb.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Error("could not open corpus file", "path", path, "err", err.Error())
		return nil, fmt.Errorf("could not open corpus file %s: %w", path, err)
	}
	defer file.Close()

	type rawDoc struct {
		originalID int
		category   string
		text       string
	}

	var rawDocs []rawDoc
	skipped := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		match := docLineRegex.FindStringSubmatch(scanner.Text())
		if match == nil {
			skipped++
			continue
		}

		originalID, err := strconv.Atoi(match[1])
		if err != nil {
			skipped++
			continue
		}

		rawDocs = append(rawDocs, rawDoc{
			originalID: originalID,
			category:   strings.TrimSpace(match[2]),
			text:       strings.TrimSpace(match[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		logger.Error("could not read corpus file", "path", path, "err", err.Error())
		return nil, fmt.Errorf("could not read corpus file %s: %w", path, err)
	}

	if skipped > 0 {
		logger.Warn("skipped corpus lines that do not match the expected format", "skipped", skipped)
	}

	sort.Slice(rawDocs, func(i, j int) bool {
		return rawDocs[i].originalID < rawDocs[j].originalID
	})

	documents := make([]indexdb.Document, len(rawDocs))
	for newID, raw := range rawDocs {
		documents[newID] = indexdb.Document{
			ID:       newID,
			Category: raw.category,
			Text:     raw.text,
			Terms:    Tokenize(CleanText(raw.text)),
		}
	}

	return documents, nil
}
