package pipeline

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func threeStages() []Stage {
	return []Stage{
		{
			ID:   "Screening",
			Name: "Screening",
			Candidates: []Candidate{
				{ID: "c1", Name: "João Silva", Email: "joao@email.com", Rating: 4, Notes: []string{"Good profile"}},
			},
		},
		{ID: "Interview", Name: "Interview"},
		{ID: "Offer", Name: "Offer"},
	}
}

func stageIDsOf(p *Pipeline, candidateID string) []string {
	result := []string{}
	for _, s := range p.Stages() {
		for _, c := range s.Candidates {
			if c.ID == candidateID {
				result = append(result, s.ID)
			}
		}
	}
	return result
}

func TestPipeline(t *testing.T) {
	t.Run(`move to next stage`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)

		err = p.MoveToNextStage("c1", "Screening")
		require.Nil(t, err)

		stages := p.Stages()
		require.Len(t, stages[0].Candidates, 0)
		require.Len(t, stages[1].Candidates, 1)
		require.Equal(t, "c1", stages[1].Candidates[0].ID)
		require.Equal(t, "João Silva", stages[1].Candidates[0].Name)
	})

	t.Run(`add note`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)

		notes, err := p.AddNote("c1", "Strong TypeScript skills")
		require.Nil(t, err)
		require.Equal(t, []string{"Good profile", "Strong TypeScript skills"}, notes)

		note, ok, err := p.MostRecentNote("c1")
		require.Nil(t, err)
		require.True(t, ok)
		require.Equal(t, "Strong TypeScript skills", note)
	})

	t.Run(`blank note is ignored`, func(t *testing.T) {
		var events []Event
		p, err := New("job-1", threeStages(), WithListener(func(e Event) { events = append(events, e) }))
		require.Nil(t, err)

		for _, text := range []string{"", "   ", "\t\n"} {
			notes, err := p.AddNote("c1", text)
			require.Nil(t, err)
			require.Equal(t, []string{"Good profile"}, notes)
		}
		require.Len(t, events, 0)
	})

	t.Run(`note for unknown candidate`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)
		_, err = p.AddNote("unknown-id", "text")
		require.True(t, errors.Is(err, ErrCandidateNotFound))
		_, _, err = p.MostRecentNote("unknown-id")
		require.True(t, errors.Is(err, ErrCandidateNotFound))
	})

	t.Run(`most recent note of candidate without notes`, func(t *testing.T) {
		stages := threeStages()
		stages[1].Candidates = []Candidate{{ID: "c2", Name: "Ana Costa"}}
		p, err := New("job-1", stages)
		require.Nil(t, err)
		note, ok, err := p.MostRecentNote("c2")
		require.Nil(t, err)
		require.False(t, ok)
		require.Equal(t, "", note)
	})

	t.Run(`move from terminal stage`, func(t *testing.T) {
		stages := threeStages()
		stages[0].Candidates = nil
		stages[2].Candidates = []Candidate{{ID: "c1", Name: "João Silva"}}
		p, err := New("job-1", stages)
		require.Nil(t, err)

		err = p.MoveToNextStage("c1", "Offer")
		require.True(t, errors.Is(err, ErrNoNextStage))
		require.Equal(t, []string{"Offer"}, stageIDsOf(p, "c1"))
		require.Len(t, p.Stages()[2].Candidates, 1)
	})

	t.Run(`move unknown candidate`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)

		err = p.MoveToStage("unknown-id", "Screening", "Interview")
		require.True(t, errors.Is(err, ErrCandidateNotFound))
		require.Equal(t, []string{"Screening"}, stageIDsOf(p, "c1"))
	})

	t.Run(`move from wrong stage`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)

		err = p.MoveToNextStage("c1", "Interview")
		require.True(t, errors.Is(err, ErrCandidateNotFound))
		require.Equal(t, []string{"Screening"}, stageIDsOf(p, "c1"))
	})

	t.Run(`unknown stages`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)

		require.True(t, errors.Is(p.MoveToNextStage("c1", "Nope"), ErrStageNotFound))
		require.True(t, errors.Is(p.MoveToStage("c1", "Nope", "Offer"), ErrStageNotFound))
		require.True(t, errors.Is(p.MoveToStage("c1", "Screening", "Nope"), ErrStageNotFound))
		_, err = p.StagePercentage("Nope")
		require.True(t, errors.Is(err, ErrStageNotFound))
		require.Equal(t, []string{"Screening"}, stageIDsOf(p, "c1"))
	})

	t.Run(`move to arbitrary stage appends to the end`, func(t *testing.T) {
		stages := threeStages()
		stages[2].Candidates = []Candidate{{ID: "c2"}, {ID: "c3"}}
		p, err := New("job-1", stages)
		require.Nil(t, err)

		err = p.MoveToStage("c1", "Screening", "Offer")
		require.Nil(t, err)
		offer := p.Stages()[2].Candidates
		require.Len(t, offer, 3)
		require.Equal(t, "c1", offer[2].ID)
		require.Len(t, p.Stages()[0].Candidates, 0)

		// назад по воронке
		err = p.MoveToStage("c2", "Offer", "Screening")
		require.Nil(t, err)
		require.Equal(t, "c2", p.Stages()[0].Candidates[0].ID)
		stageID, err := p.StageOf("c2")
		require.Nil(t, err)
		require.Equal(t, "Screening", stageID)
	})

	t.Run(`move within the same stage`, func(t *testing.T) {
		stages := threeStages()
		stages[0].Candidates = append(stages[0].Candidates, Candidate{ID: "c2"})
		p, err := New("job-1", stages)
		require.Nil(t, err)

		err = p.MoveToStage("c1", "Screening", "Screening")
		require.Nil(t, err)
		screening := p.Stages()[0].Candidates
		require.Len(t, screening, 2)
		require.Equal(t, "c2", screening[0].ID)
		require.Equal(t, "c1", screening[1].ID)
	})

	t.Run(`notes survive moves`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)
		_, err = p.AddNote("c1", "second")
		require.Nil(t, err)
		require.Nil(t, p.MoveToNextStage("c1", "Screening"))
		require.Nil(t, p.MoveToNextStage("c1", "Interview"))

		c, err := p.Candidate("c1")
		require.Nil(t, err)
		require.Equal(t, []string{"Good profile", "second"}, c.Notes)
	})

	t.Run(`duplicate candidate`, func(t *testing.T) {
		stages := threeStages()
		stages[1].Candidates = []Candidate{{ID: "c1"}}
		_, err := New("job-1", stages)
		require.True(t, errors.Is(err, ErrDuplicateCandidate))

		stages = threeStages()
		stages[0].Candidates = append(stages[0].Candidates, Candidate{ID: "c1"})
		_, err = New("job-1", stages)
		require.True(t, errors.Is(err, ErrDuplicateCandidate))
	})

	t.Run(`duplicate stage`, func(t *testing.T) {
		stages := threeStages()
		stages[2].ID = "Screening"
		_, err := New("job-1", stages)
		require.True(t, errors.Is(err, ErrDuplicateStage))
	})

	t.Run(`rating is clamped`, func(t *testing.T) {
		stages := threeStages()
		stages[1].Candidates = []Candidate{{ID: "c2", Rating: 9}, {ID: "c3", Rating: -2}}
		p, err := New("job-1", stages)
		require.Nil(t, err)
		c2, _ := p.Candidate("c2")
		c3, _ := p.Candidate("c3")
		require.Equal(t, MaxRating, c2.Rating)
		require.Equal(t, MinRating, c3.Rating)
	})

	t.Run(`input and snapshots are copies`, func(t *testing.T) {
		stages := threeStages()
		p, err := New("job-1", stages)
		require.Nil(t, err)

		stages[0].Candidates[0].Notes[0] = "changed outside"
		snapshot := p.Stages()
		snapshot[0].Candidates[0].Notes = append(snapshot[0].Candidates[0].Notes, "snapshot note")

		c, err := p.Candidate("c1")
		require.Nil(t, err)
		require.Equal(t, []string{"Good profile"}, c.Notes)
	})

	t.Run(`terminal stage`, func(t *testing.T) {
		p, err := New("job-1", threeStages())
		require.Nil(t, err)
		isLast, err := p.IsTerminal("Offer")
		require.Nil(t, err)
		require.True(t, isLast)
		isLast, err = p.IsTerminal("Screening")
		require.Nil(t, err)
		require.False(t, isLast)
	})
}

func TestPipelineEvents(t *testing.T) {
	t.Run(`events carry stage and candidate names`, func(t *testing.T) {
		now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
		var events []Event
		p, err := New("job-1", threeStages(),
			WithClock(func() time.Time { return now }),
			WithListener(func(e Event) { events = append(events, e) }))
		require.Nil(t, err)

		require.Nil(t, p.MoveToNextStage("c1", "Screening"))
		_, err = p.AddNote("c1", "call back")
		require.Nil(t, err)

		require.Len(t, events, 2)
		require.Equal(t, EventCandidateMoved, events[0].Type)
		require.Equal(t, "job-1", events[0].JobID)
		require.Equal(t, "João Silva", events[0].CandidateName)
		require.Equal(t, "Screening", events[0].FromStageID)
		require.Equal(t, "Interview", events[0].ToStageID)
		require.Equal(t, "Interview", events[0].StageName)
		require.Equal(t, 0, events[0].Position)
		require.Equal(t, now, events[0].Time)

		require.Equal(t, EventNoteAdded, events[1].Type)
		require.Equal(t, "call back", events[1].Note)
		require.Equal(t, "Interview", events[1].ToStageID)
	})

	t.Run(`failed operations emit nothing`, func(t *testing.T) {
		var events []Event
		p, err := New("job-1", threeStages())
		require.Nil(t, err)
		p.Subscribe(func(e Event) { events = append(events, e) })

		require.NotNil(t, p.MoveToNextStage("c1", "Offer"))
		require.NotNil(t, p.MoveToStage("c9", "Screening", "Offer"))
		require.Len(t, events, 0)
	})
}

func TestPipelineStats(t *testing.T) {
	t.Run(`percentages`, func(t *testing.T) {
		stages := []Stage{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"}}
		id := 0
		for k, count := range []int{4, 3, 2, 1} {
			for j := 0; j < count; j++ {
				id++
				stages[k].Candidates = append(stages[k].Candidates, Candidate{ID: string(rune('a' + id))})
			}
		}
		p, err := New("job-1", stages)
		require.Nil(t, err)
		require.Equal(t, 10, p.Total())

		result := []int{}
		for _, s := range stages {
			value, err := p.StagePercentage(s.ID)
			require.Nil(t, err)
			result = append(result, value)
		}
		require.Equal(t, []int{40, 30, 20, 10}, result)

		counts := p.CandidateCountByStage()
		require.Len(t, counts, 4)
		require.Equal(t, 4, counts[0].Count)
		require.Equal(t, "s4", counts[3].StageID)

		stats := p.StagePercentages()
		require.Equal(t, 40, stats[0].Percentage)
		require.Equal(t, 10, stats[3].Percentage)
	})

	t.Run(`empty pipeline`, func(t *testing.T) {
		p, err := New("job-1", []Stage{{ID: "s1"}, {ID: "s2"}})
		require.Nil(t, err)
		for _, id := range []string{"s1", "s2"} {
			value, err := p.StagePercentage(id)
			require.Nil(t, err)
			require.Equal(t, 0, value)
		}
	})

	t.Run(`rounding`, func(t *testing.T) {
		require.Equal(t, 33, percentage(1, 3))
		require.Equal(t, 67, percentage(2, 3))
		require.Equal(t, 13, percentage(1, 8))
		require.Equal(t, 100, percentage(5, 5))
		require.Equal(t, 0, percentage(0, 0))
	})

	t.Run(`every candidate in exactly one stage after random moves`, func(t *testing.T) {
		stages := []Stage{
			{ID: "a", Candidates: []Candidate{{ID: "1"}, {ID: "2"}}},
			{ID: "b", Candidates: []Candidate{{ID: "3"}}},
			{ID: "c"},
		}
		p, err := New("job-1", stages)
		require.Nil(t, err)
		moves := [][3]string{{"1", "a", "c"}, {"3", "b", "a"}, {"2", "a", "b"}, {"1", "c", "a"}, {"9", "a", "b"}, {"3", "c", "a"}}
		for _, m := range moves {
			_ = p.MoveToStage(m[0], m[1], m[2])
			for _, id := range []string{"1", "2", "3"} {
				require.Len(t, stageIDsOf(p, id), 1)
			}
			total := 0
			for _, c := range p.CandidateCountByStage() {
				total += c.Count
			}
			require.Equal(t, 3, total)
		}
	})
}
