package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmcore/dcm"
	"github.com/codeninja55/dcmcore/internal/config"
	"github.com/codeninja55/dcmcore/internal/ui"
	"github.com/codeninja55/dcmcore/tag"
	"github.com/codeninja55/dcmcore/uid"
)

// InspectCmd builds a synthetic study-level DataSet — patient/study
// identity, image geometry, and a nested observer Sequence — plus a
// three-frame BasicOffsetTable, and renders them.
//
// There is no file or network input here — this module has no byte-level
// parser or transport — so this command's only job is to exercise the
// data model's construction, validation, and print paths.
type InspectCmd struct {
	PatientName string `name:"patient-name" default:"Doe^Jane" help:"PatientName (PN) value"`
	PatientID   string `name:"patient-id" default:"MRN-0001" help:"PatientID (LO) value"`
	Modality    string `name:"modality" default:"CT" help:"Modality (CS) value"`
	Rows        int64  `name:"rows" default:"512" help:"Rows (US) value"`
	Columns     int64  `name:"columns" default:"512" help:"Columns (US) value"`
}

func (c *InspectCmd) Run(cfg *config.GlobalConfig) error {
	ui.PrintBanner()
	logger := log.Default()

	ds, err := c.buildDataSet()
	if err != nil {
		return fmt.Errorf("build data set: %w", err)
	}
	ds.Lock()
	logger.Info("built data set", "elements", ds.Count())

	bot, err := dcm.NewBasicOffsetTable([]int64{0, 128 * 1024, 256 * 1024}, 132)
	if err != nil {
		return fmt.Errorf("build offset table: %w", err)
	}
	logger.Debug("built basic offset table", "frames", bot.NumFrames())

	return RenderDataSet(ds, bot, cfg.Format, os.Stdout)
}

// buildDataSet assembles the synthetic DataSet from CLI flags. Each
// Element is validated by Element.SetString/SetInteger at assignment
// time, so a bad flag value surfaces as a dcmerr.Error here rather than
// silently producing a malformed DataSet.
func (c *InspectCmd) buildDataSet() (*dcm.DataSet, error) {
	ds := dcm.NewDataSet()

	if err := insertString(ds, 0x0010, 0x0010, c.PatientName); err != nil { // PatientName
		return nil, err
	}
	if err := insertString(ds, 0x0010, 0x0020, c.PatientID); err != nil { // PatientID
		return nil, err
	}
	if err := insertString(ds, 0x0008, 0x0060, c.Modality); err != nil { // Modality
		return nil, err
	}
	if err := insertString(ds, 0x0020, 0x000D, uid.Generate()); err != nil { // StudyInstanceUID
		return nil, err
	}
	if err := insertString(ds, 0x0020, 0x000E, uid.Generate()); err != nil { // SeriesInstanceUID
		return nil, err
	}
	if err := insertInteger(ds, 0x0028, 0x0010, c.Rows); err != nil { // Rows
		return nil, err
	}
	if err := insertInteger(ds, 0x0028, 0x0011, c.Columns); err != nil { // Columns
		return nil, err
	}
	if err := insertString(ds, 0x0028, 0x0030, `0.5\0.5`); err != nil { // PixelSpacing
		return nil, err
	}

	observerSeq, err := buildObserverSequence()
	if err != nil {
		return nil, err
	}
	seqElem, err := dcm.NewElement(tag.New(0x0040, 0xA073), 0) // VerifyingObserverSequence
	if err != nil {
		return nil, err
	}
	if err := seqElem.SetSequence(observerSeq); err != nil {
		return nil, err
	}
	if err := ds.Insert(seqElem); err != nil {
		return nil, err
	}

	return ds, nil
}

// buildObserverSequence constructs a single-item SEQUENCE value: one
// observer's name, wrapped in its own DataSet and appended — and thereby
// locked, per Sequence.Append's contract — to the sequence.
func buildObserverSequence() (*dcm.Sequence, error) {
	seq := dcm.NewSequence()
	item := dcm.NewDataSet()
	if err := insertString(item, 0x0040, 0xA075, "Smith^Robert"); err != nil { // VerifyingObserverName
		return nil, err
	}
	if err := seq.Append(item); err != nil {
		return nil, err
	}
	return seq, nil
}

func insertString(ds *dcm.DataSet, group, element uint16, value string) error {
	e, err := dcm.NewElement(tag.New(group, element), 0)
	if err != nil {
		return err
	}
	if err := e.SetString(value); err != nil {
		return err
	}
	return ds.Insert(e)
}

func insertInteger(ds *dcm.DataSet, group, element uint16, value int64) error {
	e, err := dcm.NewElement(tag.New(group, element), 0)
	if err != nil {
		return err
	}
	if err := e.SetInteger(value); err != nil {
		return err
	}
	return ds.Insert(e)
}
