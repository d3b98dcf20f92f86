package domain

import (
	"fmt"

	"github.com/aretw0/diploma/pkg/schema"
	"github.com/mitchellh/mapstructure"
)

// Snapshot is the persisted form of a defense process.
// Field names are part of the save format and must stay stable.
type Snapshot struct {
	Today          int    `json:"today" mapstructure:"today"`
	Stage          string `json:"stage" mapstructure:"stage"`
	Seed           *int64 `json:"seed" mapstructure:"seed"`
	RevisionPassed []bool `json:"revision_passed" mapstructure:"revision_passed"`
	DefensePassed  bool   `json:"defense_passed" mapstructure:"defense_passed"`
	FinalGrade     int    `json:"final_grade" mapstructure:"final_grade"`
	Score          int    `json:"score" mapstructure:"score"`

	Student        StudentSnapshot        `json:"student" mapstructure:"student"`
	Theme          ThemeSnapshot          `json:"theme" mapstructure:"theme"`
	DiplomaProject DiplomaProjectSnapshot `json:"diploma_project" mapstructure:"diploma_project"`
	Presentation   PresentationSnapshot   `json:"presentation" mapstructure:"presentation"`
	Supervisor     SupervisorSnapshot     `json:"supervisor" mapstructure:"supervisor"`
	Commission     CommissionSnapshot     `json:"commission" mapstructure:"commission"`
}

type StudentSnapshot struct {
	Name         string `json:"name" mapstructure:"name"`
	Intelligence int    `json:"intelligence" mapstructure:"intelligence"`
	Stamina      int    `json:"stamina" mapstructure:"stamina"`
	AnswerSkill  int    `json:"answer_skill" mapstructure:"answer_skill"`
}

type ThemeSnapshot struct {
	Name       string `json:"name" mapstructure:"name"`
	Complexity int    `json:"complexity" mapstructure:"complexity"`
}

type DiplomaProjectSnapshot struct {
	PctCompletion int `json:"pct_completion" mapstructure:"pct_completion"`
	Quality       int `json:"quality" mapstructure:"quality"`
}

type PresentationSnapshot struct {
	PctCompletion int `json:"pct_completion" mapstructure:"pct_completion"`
}

type SupervisorSnapshot struct {
	Name         string `json:"name" mapstructure:"name"`
	Intelligence int    `json:"intelligence" mapstructure:"intelligence"`
	Loyalty      int    `json:"loyalty" mapstructure:"loyalty"`
}

type CommissionSnapshot struct {
	Loyalty int `json:"loyalty" mapstructure:"loyalty"`
}

// SaveFile is the content of one save slot.
type SaveFile struct {
	Slot    int      `json:"slot" mapstructure:"slot"`
	Process Snapshot `json:"process" mapstructure:"process"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Seed != nil {
		seed := *s.Seed
		out.Seed = &seed
	}
	out.RevisionPassed = append([]bool(nil), s.RevisionPassed...)
	return out
}

// Clone returns a deep copy of the save file.
func (f *SaveFile) Clone() *SaveFile {
	return &SaveFile{Slot: f.Slot, Process: f.Process.Clone()}
}

// SnapshotSchema is the expected shape of a decoded snapshot.
// seed, defense_passed and final_grade may be absent or null.
var SnapshotSchema = schema.Schema{
	"today":           schema.Int(),
	"stage":           schema.String(),
	"seed":            schema.Optional(schema.Int()),
	"revision_passed": schema.Slice(schema.Bool()),
	"defense_passed":  schema.Optional(schema.Bool()),
	"final_grade":     schema.Optional(schema.Int()),
	"score":           schema.Int(),
	"student": schema.Object(schema.Schema{
		"name":         schema.String(),
		"intelligence": schema.Int(),
		"stamina":      schema.Int(),
		"answer_skill": schema.Int(),
	}),
	"theme": schema.Object(schema.Schema{
		"name":       schema.String(),
		"complexity": schema.Int(),
	}),
	"diploma_project": schema.Object(schema.Schema{
		"pct_completion": schema.Int(),
		"quality":        schema.Int(),
	}),
	"presentation": schema.Object(schema.Schema{
		"pct_completion": schema.Int(),
	}),
	"supervisor": schema.Object(schema.Schema{
		"name":         schema.String(),
		"intelligence": schema.Int(),
		"loyalty":      schema.Int(),
	}),
	"commission": schema.Object(schema.Schema{
		"loyalty": schema.Int(),
	}),
}

// SaveFileSchema is the expected shape of a decoded save file.
var SaveFileSchema = schema.Schema{
	"slot":    schema.Int(),
	"process": schema.Object(SnapshotSchema),
}

// DecodeSnapshot converts a generic nested key-value structure (as produced
// by json.Unmarshal into map[string]any) into a Snapshot.
// Shape problems are reported together and wrap ErrCorruptSnapshot.
// Entity bounds are not checked here; restoring the process does that.
func DecodeSnapshot(data map[string]any) (Snapshot, error) {
	var snap Snapshot
	if err := decode(SnapshotSchema, data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// DecodeSaveFile converts a generic nested key-value structure into a SaveFile.
func DecodeSaveFile(data map[string]any) (*SaveFile, error) {
	var save SaveFile
	if err := decode(SaveFileSchema, data, &save); err != nil {
		return nil, err
	}
	return &save, nil
}

func decode(shape schema.Schema, data map[string]any, out any) error {
	if data == nil {
		return fmt.Errorf("%w: empty document", ErrCorruptSnapshot)
	}
	if err := schema.Validate(shape, data); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create snapshot decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return nil
}
