package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexeyco/simpletable"

	"github.com/codeninja55/dcmcore/dcm"
	"github.com/codeninja55/dcmcore/internal/config"
	"github.com/codeninja55/dcmcore/internal/ui"
	"github.com/codeninja55/dcmcore/tag"
)

// elementRow is the flattened, serialization-friendly view of one
// Element, shared by both the table and JSON renderers.
type elementRow struct {
	Tag   string `json:"tag"`
	Name  string `json:"name,omitempty"`
	VR    string `json:"vr"`
	Length int   `json:"length"`
	Value string `json:"value"`
}

// RenderDataSet writes ds (in its sorted CopyTags order) and bot's frame
// offsets to w, in the format selected by format.
func RenderDataSet(ds *dcm.DataSet, bot *dcm.BasicOffsetTable, format config.OutputFormat, w io.Writer) error {
	var rows []elementRow
	if err := walkElements(ds, &rows); err != nil {
		return err
	}

	switch format {
	case config.FormatJSON:
		return renderJSON(rows, bot, w)
	default:
		renderTable(rows, bot, w)
		return nil
	}
}

func walkElements(ds *dcm.DataSet, rows *[]elementRow) error {
	for _, t := range ds.CopyTags() {
		elem, err := ds.Get(t)
		if err != nil {
			return err
		}
		var name string
		if info, err := tag.Find(t); err == nil {
			name = info.Keyword
		}
		*rows = append(*rows, elementRow{
			Tag:    t.String(),
			Name:   name,
			VR:     elem.VR().String(),
			Length: elem.Length(),
			Value:  elem.String(),
		})
	}
	return nil
}

func renderTable(rows []elementRow, bot *dcm.BasicOffsetTable, w io.Writer) {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Tag"},
			{Align: simpletable.AlignCenter, Text: "Name"},
			{Align: simpletable.AlignCenter, Text: "VR"},
			{Align: simpletable.AlignCenter, Text: "Length"},
			{Align: simpletable.AlignLeft, Text: "Value"},
		},
	}
	for _, row := range rows {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: row.Tag},
			{Text: row.Name},
			{Text: row.VR},
			{Align: simpletable.AlignRight, Text: fmt.Sprintf("%d", row.Length)},
			{Text: row.Value},
		})
	}
	table.SetStyle(simpletable.StyleCompactLite)
	fmt.Fprintln(w, table.String())
	fmt.Fprintln(w, ui.SubtleStyle.Render("---"))
	fmt.Fprintf(w, "Basic Offset Table: %s (%d frames)\n", bot.String(), bot.NumFrames())
}

func renderJSON(rows []elementRow, bot *dcm.BasicOffsetTable, w io.Writer) error {
	out := struct {
		Elements         []elementRow `json:"elements"`
		BasicOffsetTable string       `json:"basic_offset_table"`
	}{
		Elements:         rows,
		BasicOffsetTable: bot.String(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
