package pipeline

import "github.com/pkg/errors"

type StageCount struct {
	StageID   string
	StageName string
	Count     int
}

type StageStats struct {
	StageCount
	Percentage int // доля от общего числа кандидатов, целые проценты
}

// CandidateCountByStage количество кандидатов на каждом этапе в порядке этапов
func (p *Pipeline) CandidateCountByStage() []StageCount {
	result := make([]StageCount, 0, len(p.stages))
	for _, s := range p.stages {
		result = append(result, StageCount{
			StageID:   s.id,
			StageName: s.name,
			Count:     len(s.candidates),
		})
	}
	return result
}

// StagePercentage доля кандидатов этапа от всех кандидатов воронки, округление до целого.
// Для пустой воронки всегда 0.
func (p *Pipeline) StagePercentage(stageID string) (int, error) {
	idx, ok := p.stageIdx[stageID]
	if !ok {
		return 0, errors.Wrapf(ErrStageNotFound, "этап %s", stageID)
	}
	return percentage(len(p.stages[idx].candidates), p.Total()), nil
}

func (p *Pipeline) StagePercentages() []StageStats {
	total := p.Total()
	counts := p.CandidateCountByStage()
	result := make([]StageStats, 0, len(counts))
	for _, item := range counts {
		result = append(result, StageStats{
			StageCount: item,
			Percentage: percentage(item.Count, total),
		})
	}
	return result
}

// округление половины вверх, как Math.round на фронте
func percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (count*200 + total) / (2 * total)
}
