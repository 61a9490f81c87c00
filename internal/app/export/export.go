// Package export writes a spreadsheet catalogue of the stored recordings, their
// transcripts and the synthesized audio.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"convai/internal/app/storage"
)

// Recording is one row of the Recordings sheet
type Recording struct {
	AudioName  string
	Modified   time.Time
	SizeBytes  int64
	Transcript string
	Sentiment  string
}

// Synthesis is one row of the Synthesized sheet
type Synthesis struct {
	AudioName string
	Modified  time.Time
	SizeBytes int64
}

// Catalogue is the content of the exported workbook
type Catalogue struct {
	Recordings  []Recording
	Synthesized []Synthesis
}

// Collect builds the catalogue from the two stores. A sidecar's trailing line
// starting with "Sentiment:" is split out of the transcript.
func Collect(uploads, audio *storage.Store) (*Catalogue, error) {
	uploadNames, err := uploads.List()
	if err != nil {
		return nil, err
	}
	audioNames, err := audio.List()
	if err != nil {
		return nil, err
	}

	catalogue := &Catalogue{}
	for _, name := range lo.Filter(uploadNames, func(n string, _ int) bool { return storage.IsAudio(n) }) {
		info, err := uploads.Stat(name)
		if err != nil {
			return nil, err
		}

		rec := Recording{AudioName: name, Modified: info.ModTime(), SizeBytes: info.Size()}
		if text, err := uploads.Read(storage.SidecarName(name)); err == nil {
			rec.Transcript, rec.Sentiment = splitSentiment(string(text))
		}
		catalogue.Recordings = append(catalogue.Recordings, rec)
	}

	for _, name := range lo.Filter(audioNames, func(n string, _ int) bool { return storage.IsAudio(n) }) {
		info, err := audio.Stat(name)
		if err != nil {
			return nil, err
		}
		catalogue.Synthesized = append(catalogue.Synthesized, Synthesis{
			AudioName: name,
			Modified:  info.ModTime(),
			SizeBytes: info.Size(),
		})
	}
	return catalogue, nil
}

func splitSentiment(text string) (transcript, sentiment string) {
	i := strings.LastIndex(text, "\n")
	if i >= 0 && strings.HasPrefix(text[i+1:], "Sentiment: ") {
		return text[:i], text[i+1:]
	}
	return text, ""
}

// ToExcel writes the catalogue to outputFilePath
func ToExcel(catalogue *Catalogue, outputFilePath string) error {
	file := xlsx.NewFile()

	recordings, err := file.AddSheet("Recordings")
	if err != nil {
		return err
	}
	addRow(recordings, "Audio File", "Modified", "Size (bytes)", "Transcript", "Sentiment")
	for _, r := range catalogue.Recordings {
		addRow(recordings,
			r.AudioName,
			r.Modified.Format(time.RFC3339),
			fmt.Sprint(r.SizeBytes),
			r.Transcript,
			r.Sentiment,
		)
	}

	synthesized, err := file.AddSheet("Synthesized")
	if err != nil {
		return err
	}
	addRow(synthesized, "Audio File", "Modified", "Size (bytes)")
	for _, s := range catalogue.Synthesized {
		addRow(synthesized, s.AudioName, s.Modified.Format(time.RFC3339), fmt.Sprint(s.SizeBytes))
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}
