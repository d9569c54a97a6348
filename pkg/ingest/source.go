package ingest

import (
	"context"
	"fmt"
	"sort"

	"github.com/amoreau/repartition/internal/config"
	"github.com/amoreau/repartition/pkg/mobility"
	"github.com/amoreau/repartition/pkg/model"
	"github.com/amoreau/repartition/pkg/offerings"
)

// SnapshotSource produces the loaded, ready-to-optimize snapshot plus
// each student's current (pre-optimization) class. Implementations
// decide where the data comes from; the core never imports this
// package.
type SnapshotSource interface {
	Load(ctx context.Context) (*model.Snapshot, map[string][]string, error)
}

// SheetsSource loads the roster and quota tabs named in cfg from
// Google Sheets.
type SheetsSource struct {
	Client *Client
	Config *config.Config
}

// NewSheetsSource builds a SheetsSource, performing the OAuth flow if
// needed.
func NewSheetsSource(ctx context.Context, cfg *config.Config, oauthCfg *config.OAuthClientConfig, env string) (*SheetsSource, error) {
	client, err := NewClient(ctx, oauthCfg, env)
	if err != nil {
		return nil, err
	}
	return &SheetsSource{Client: client, Config: cfg}, nil
}

// Load reads the student roster and both quota tabs, derives
// offerings and mobility, and assembles the snapshot plus the initial
// per-class membership the optimizer starts from.
func (s *SheetsSource) Load(ctx context.Context) (*model.Snapshot, map[string][]string, error) {
	rosterRaw, err := s.Client.GetValues(s.Config.StudentsSheetID, s.Config.StudentsTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster tab: %w", err)
	}
	students, initialClass, err := parseStudents(rosterRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse roster tab: %w", err)
	}

	classNames := distinctSortedValues(initialClass)

	lv2Raw, err := s.Client.GetValues(s.Config.QuotasSheetID, s.Config.LV2QuotasTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read LV2 quota tab: %w", err)
	}
	lv2Rows, err := parseQuotaRows(lv2Raw, classNames)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse LV2 quota tab: %w", err)
	}

	optRaw, err := s.Client.GetValues(s.Config.QuotasSheetID, s.Config.OPTQuotasTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read OPT quota tab: %w", err)
	}
	optRows, err := parseQuotaRows(optRaw, classNames)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse OPT quota tab: %w", err)
	}

	offeringModel := offerings.Build(lv2Rows, optRows, classNames)

	studentsByID := make(map[string]model.Student, len(students))
	studentOrder := make([]string, 0, len(students))
	for _, student := range students {
		studentsByID[student.ID] = student
		studentOrder = append(studentOrder, student.ID)
	}

	initialMembers := make(map[string][]string, len(classNames))
	targets := make(map[string]int, len(classNames))
	for _, id := range studentOrder {
		className := initialClass[id]
		initialMembers[className] = append(initialMembers[className], id)
	}
	for _, name := range classNames {
		targets[name] = len(initialMembers[name])
	}

	snapshot := &model.Snapshot{
		Students:     studentsByID,
		StudentOrder: studentOrder,
		ClassNames:   classNames,
		Targets:      targets,
		Offerings:    offeringModel,
	}

	mobilityFlags := mobility.Compute(snapshot)
	for id, flag := range mobilityFlags {
		student := snapshot.Students[id]
		student.MobilityFlag = flag
		snapshot.Students[id] = student
	}

	return snapshot, initialMembers, nil
}

func distinctSortedValues(m map[string]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
