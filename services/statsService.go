package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"RaacProms/models"
	"RaacProms/repositories"
)

// StatsRow summarizes one timepoint: number of measures, mean scores and the
// completion rate against the patient base. Means show one decimal; an empty
// cell renders as "-".
type StatsRow struct {
	Timepoint  string `json:"timepoint"`
	N          int    `json:"n"`
	AvgOxford  string `json:"avg_oxford"`
	AvgWomac   string `json:"avg_womac"`
	Completion string `json:"completion"`
}

type StatsService struct {
	patientRepo *repositories.PatientRepository
	measureRepo *repositories.MeasureRepository
}

func NewStatsService(patientRepo *repositories.PatientRepository, measureRepo *repositories.MeasureRepository) *StatsService {
	return &StatsService{patientRepo: patientRepo, measureRepo: measureRepo}
}

// Get computes per-timepoint statistics, optionally restricted to one joint.
func (s *StatsService) Get(ctx context.Context, joint string) ([]StatsRow, error) {
	patients, err := s.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	measures, err := s.measureRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(patients, measures, joint), nil
}

func computeStats(patients []models.Patient, measures []models.Measure, joint string) []StatsRow {
	jointByPatient := make(map[string]string, len(patients))
	base := 0
	for _, p := range patients {
		jointByPatient[p.ID] = p.Joint
		if joint == "" || p.Joint == joint {
			base++
		}
	}

	rows := make([]StatsRow, 0, len(models.Timepoints))
	for _, tp := range models.Timepoints {
		n, oxfordSum, womacSum := 0, 0, 0
		for _, m := range measures {
			if m.Timepoint != tp.ID {
				continue
			}
			if joint != "" && jointByPatient[m.PatientID] != joint {
				continue
			}
			n++
			oxfordSum += m.OxfordScore
			womacSum += m.WomacScore
		}

		row := StatsRow{Timepoint: tp.Label, N: n, AvgOxford: "-", AvgWomac: "-", Completion: "-"}
		if n > 0 {
			row.AvgOxford = fmt.Sprintf("%.1f", float64(oxfordSum)/float64(n))
			row.AvgWomac = fmt.Sprintf("%.1f", float64(womacSum)/float64(n))
		}
		if base > 0 {
			row.Completion = strconv.Itoa(int(math.Round(100*float64(n)/float64(base)))) + "%"
		}
		rows = append(rows, row)
	}
	return rows
}
